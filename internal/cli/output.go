package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ekaraca/phishdrill/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Hata: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []model.LeaderboardEntry:
		o.printLeaderboard(v)
	case []model.GameResult:
		o.printResults(v)
	case RegisterResult:
		fmt.Printf("Kayıt tamamlandı. Kullanıcı no: %d\n", v.UserID)
	case HealthResult:
		fmt.Printf("Durum: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RegisterResult is what the register command prints
type RegisterResult struct {
	UserID model.UserID `json:"userId"`
}

// HealthResult is what the health command prints
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printResults(results []model.GameResult) {
	if len(results) == 0 {
		fmt.Println("Henüz kayıtlı sonuç yok.")
		return
	}
	fmt.Printf("%-4s %-15s %-6s %-4s %s\n", "No", "Mod", "Yüzde", "Not", "Tarih")
	for _, r := range results {
		fmt.Printf("%-4d %-15s %%%-5d %-4s %s\n",
			r.ID, r.GameMode, r.Percentage, r.Grade, r.PlayedAt.Format("2006-01-02 15:04"))
	}
}

func (o *Output) printLeaderboard(entries []model.LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Henüz kayıtlı sonuç yok.")
		return
	}
	fmt.Printf("%-4s %-25s %-6s %-4s %-15s %s\n", "Sıra", "Ad Soyad", "Yüzde", "Not", "Mod", "Tarih")
	for _, e := range entries {
		fmt.Printf("%-4d %-25s %%%-5d %-4s %-15s %s\n",
			e.Rank, e.FullName, e.Percentage, e.Grade, e.GameMode, e.PlayedAt)
	}
}
