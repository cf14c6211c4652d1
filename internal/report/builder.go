// Package report turns a ledger snapshot plus the billing configuration into
// the monthly billing report: one block per sector in catalog order, sector
// subtotals, the grand total, the productivity bonus and the final value.
// The output is line-structured text meant to be copied verbatim into the
// hospital's billing message, so formatting here is exact.
package report

import (
	"sort"
	"strconv"
	"strings"

	"plantoes/internal/core"
)

type SectorBlock struct {
	Sector  core.Sector
	Records []core.ShiftRecord
	Hours   int
	Value   core.Money
}

type Report struct {
	Empty      bool
	MonthName  string
	MonthLabel string
	Blocks     []SectorBlock
	TotalHours int
	TotalValue core.Money
	Bonus      core.Money
	FinalValue core.Money
	Lines      []string
}

// Text returns the report body as a single string, one line per entry.
func (r Report) Text() string {
	if r.Empty {
		return ""
	}
	return strings.Join(r.Lines, "\n") + "\n"
}

// Filename is the suggested name for the plain-text download, derived from
// the month label ("Julho/2025" -> "plantoes_julho_2025.txt").
func (r Report) Filename() string {
	label := strings.ToLower(r.MonthLabel)
	label = strings.ReplaceAll(label, "/", "_")
	label = strings.ReplaceAll(label, " ", "_")
	if label == "" {
		label = "mes"
	}
	return "plantoes_" + label + ".txt"
}

// Builder assembles reports. It is stateless apart from the currency
// formatter, and Build is a pure function of its inputs: the same snapshot
// and configuration always produce byte-identical output.
type Builder struct {
	currency *CurrencyFormatter
}

func NewBuilder() *Builder {
	return &Builder{currency: NewCurrencyFormatter()}
}

// Build renders the report for a ledger snapshot. An empty snapshot yields
// an empty report, not an error; the caller shows a placeholder. The only
// error condition is a negative amount in the configuration, which upstream
// validation already rules out.
func (b *Builder) Build(records []core.ShiftRecord, cfg core.BillingConfig) (Report, error) {
	if len(records) == 0 {
		return Report{Empty: true}, nil
	}

	sorted := append([]core.ShiftRecord(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date.Time) {
			return sorted[i].Date.Before(sorted[j].Date.Time)
		}
		ri, rj := core.SectorRank(sorted[i].Sector), core.SectorRank(sorted[j].Sector)
		if ri != rj {
			return ri < rj
		}
		return sorted[i].Slot < sorted[j].Slot
	})

	earliest := sorted[0].Date
	monthName := core.MonthNamePT(earliest.Time.Month())
	monthLabel := strings.TrimSpace(cfg.MonthLabel)
	if monthLabel == "" {
		monthLabel = monthName + "/" + strconv.Itoa(earliest.Year())
	}

	r := Report{
		MonthName:  monthName,
		MonthLabel: monthLabel,
		Bonus:      cfg.ProductivityBonus,
	}
	r.Lines = append(r.Lines,
		monthName,
		"Serviços HOE - "+cfg.DisplayName()+" - "+monthLabel+":",
		"",
	)

	for _, sector := range core.Sectors() {
		block := SectorBlock{Sector: sector}
		for _, rec := range sorted {
			if rec.Sector != sector {
				continue
			}
			block.Records = append(block.Records, rec)
			block.Hours += rec.Hours
		}
		if len(block.Records) == 0 {
			continue
		}
		block.Value = cfg.HourlyRate.Mul(block.Hours)

		r.Lines = append(r.Lines, string(sector))
		for _, rec := range block.Records {
			r.Lines = append(r.Lines, rec.Date.FormatBR()+" ("+string(rec.Slot)+") - "+strconv.Itoa(rec.Hours)+"h")
		}
		value, err := b.currency.Format(block.Value)
		if err != nil {
			return Report{}, err
		}
		r.Lines = append(r.Lines,
			"Total: "+strconv.Itoa(block.Hours)+" horas",
			"Valor: "+strconv.Itoa(block.Hours)+" X "+strconv.FormatInt(cfg.HourlyRate.Units(), 10)+" = "+value,
			"",
		)

		r.TotalHours += block.Hours
		r.TotalValue = r.TotalValue.Add(block.Value)
		r.Blocks = append(r.Blocks, block)
	}

	r.FinalValue = r.TotalValue.Add(cfg.ProductivityBonus)

	total, err := b.currency.Format(r.TotalValue)
	if err != nil {
		return Report{}, err
	}
	bonus, err := b.currency.Format(cfg.ProductivityBonus)
	if err != nil {
		return Report{}, err
	}
	final, err := b.currency.Format(r.FinalValue)
	if err != nil {
		return Report{}, err
	}
	r.Lines = append(r.Lines,
		"Valor total: "+total,
		"Produtividade",
		monthName+": "+bonus,
		"Valor final: "+final,
	)
	return r, nil
}
