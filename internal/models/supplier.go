package models

import (
	"strings"
	"time"
)

type Supplier struct {
	ID                     int64     `db:"id" json:"id"`
	Name                   string    `db:"name" json:"name"`
	ContactPerson          string    `db:"contact_person" json:"contact_person"`
	Email                  string    `db:"email" json:"email"`
	Phone                  string    `db:"phone" json:"phone"`
	Address                string    `db:"address" json:"address"`
	Skills                 string    `db:"skills" json:"skills"`
	QualifiedInvoiceNumber string    `db:"qualified_invoice_number" json:"qualified_invoice_number"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at" json:"updated_at"`
}

// SkillList splits the comma-delimited skills column.
func (s Supplier) SkillList() []string {
	if strings.TrimSpace(s.Skills) == "" {
		return nil
	}
	parts := strings.Split(s.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
