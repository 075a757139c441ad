package calendar

import (
	"fmt"
	"time"
)

const isoDateLayout = "2006-01-02"

// Date is a civil calendar date (no time of day, no timezone).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf truncates a time.Time to its civil date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the ISO YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DisplayShort returns the dd/mm/yyyy display form.
func (d Date) DisplayShort() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// DisplayLong returns the full Portuguese form, e.g.
// "sábado, 14 de fevereiro de 2026". The name tables are fixed so the output
// language does not depend on the runtime locale.
func (d Date) DisplayLong() string {
	return fmt.Sprintf("%s, %d de %s de %d", WeekdayName(d.Weekday()), d.Day, monthNames[d.Month-1], d.Year)
}

var weekdayNames = [7]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado",
}

var weekdayTitles = [7]string{
	"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira", "Quinta-feira", "Sexta-feira", "Sábado",
}

var weekdayHeaders = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var monthTitles = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// WeekdayName returns the lowercase Portuguese weekday name.
func WeekdayName(w time.Weekday) string {
	return weekdayNames[int(w)]
}

// WeekdayTitle returns the capitalized Portuguese weekday name.
func WeekdayTitle(w time.Weekday) string {
	return weekdayTitles[int(w)]
}

// MonthTitle returns the capitalized Portuguese month name.
func MonthTitle(m time.Month) string {
	return monthTitles[m-1]
}
