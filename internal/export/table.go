// Package export renders ledger reports as downloadable files.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/property_ledger/internal/core/domain"
)

// Table is a report flattened into rows of text.
type Table struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]string
	Footer   []string
	// Numeric marks the columns holding amounts, aligned right and typed as numbers where supported.
	Numeric map[int]bool
}

// Renderer writes a Table in a specific file format.
type Renderer interface {
	Render(w io.Writer, t Table) error
	ContentType() string
	Extension() string
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func describeFilter(f domain.EntryFilter) string {
	var parts []string
	switch {
	case f.DateFrom != nil && f.DateTo != nil:
		parts = append(parts, fmt.Sprintf("Del %s al %s", f.DateFrom.Format(domain.DateLayout), f.DateTo.Format(domain.DateLayout)))
	case f.DateFrom != nil:
		parts = append(parts, "Desde "+f.DateFrom.Format(domain.DateLayout))
	case f.DateTo != nil:
		parts = append(parts, "Hasta "+f.DateTo.Format(domain.DateLayout))
	}
	if f.AccountCode != "" {
		parts = append(parts, "Cuenta "+f.AccountCode)
	}
	if f.PartyID != "" {
		parts = append(parts, "Tercero "+f.PartyID)
	}
	if len(parts) == 0 {
		return "Todos los movimientos"
	}
	return strings.Join(parts, " | ")
}

// TrialBalanceTable flattens a trial balance.
func TrialBalanceTable(f domain.EntryFilter, tb *domain.TrialBalance) Table {
	t := Table{
		Title:    "Balance de Prueba",
		Subtitle: describeFilter(f),
		Headers:  []string{"Código", "Cuenta", "Débito", "Crédito", "Saldo"},
		Numeric:  map[int]bool{2: true, 3: true, 4: true},
	}
	for _, r := range tb.Rows {
		t.Rows = append(t.Rows, []string{r.Code, r.Name, amount(r.Debit), amount(r.Credit), amount(r.Balance)})
	}
	t.Footer = []string{"", "Totales", amount(tb.TotalDebit), amount(tb.TotalCredit), amount(tb.TotalDebit.Sub(tb.TotalCredit))}
	return t
}

// BalanceSheetTable flattens a balance sheet: per-account detail followed by class totals.
func BalanceSheetTable(f domain.EntryFilter, bs *domain.BalanceSheet) Table {
	t := Table{
		Title:    "Balance General",
		Subtitle: describeFilter(f),
		Headers:  []string{"Código", "Cuenta", "Clase", "Saldo"},
		Numeric:  map[int]bool{3: true},
	}
	for _, r := range bs.Detail {
		switch r.Class {
		case domain.Asset, domain.Liability, domain.Equity, domain.Other:
			t.Rows = append(t.Rows, []string{r.Code, r.Name, string(r.Class), amount(r.Balance)})
		}
	}
	t.Rows = append(t.Rows,
		[]string{"", "Total activo", string(domain.Asset), amount(bs.Summary.Asset)},
		[]string{"", "Total pasivo", string(domain.Liability), amount(bs.Summary.Liability)},
		[]string{"", "Total patrimonio", string(domain.Equity), amount(bs.Summary.Equity)},
	)
	if len(bs.Unclassified) > 0 {
		t.Footer = []string{"", "Sin clasificar: " + strings.Join(bs.Unclassified, ", "), "", ""}
	}
	return t
}

// IncomeStatementTable flattens an income statement.
func IncomeStatementTable(f domain.EntryFilter, is *domain.IncomeStatement) Table {
	return Table{
		Title:    "Estado de Resultados",
		Subtitle: describeFilter(f) + " | Convención: " + string(is.Convention),
		Headers:  []string{"Concepto", "Valor"},
		Numeric:  map[int]bool{1: true},
		Rows: [][]string{
			{"Ingresos", amount(is.TotalIncome)},
			{"Gastos", amount(is.TotalExpense)},
		},
		Footer: []string{"Resultado neto", amount(is.NetIncome)},
	}
}

// JournalTable flattens a journal listing, one row per posting line.
func JournalTable(f domain.EntryFilter, jl *domain.JournalListing) Table {
	t := Table{
		Title:    "Libro Diario",
		Subtitle: describeFilter(f),
		Headers:  []string{"No.", "Fecha", "Documento", "Descripción", "Cuenta", "Nombre", "Débito", "Crédito"},
		Numeric:  map[int]bool{6: true, 7: true},
	}
	for _, e := range jl.Entries {
		for i, l := range e.Lines {
			number, date, doc, desc := "", "", "", ""
			if i == 0 {
				number = fmt.Sprintf("%d", e.Entry.EntryNumber)
				date = e.Entry.Date.Format(domain.DateLayout)
				doc = e.Entry.SourceDocument
				desc = e.Entry.Description
			}
			t.Rows = append(t.Rows, []string{number, date, doc, desc, l.AccountCode, l.AccountName, amount(l.DebitAmount), amount(l.CreditAmount)})
		}
	}
	return t
}
