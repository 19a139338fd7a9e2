package generator

import (
	"fmt"
	"strings"
	"time"

	"restoration-financials/internal/domain"
)

// businessKeywords mark a customer name as commercial. Plain substring
// matching, so "Home" also catches residential names like "Williams Home".
var businessKeywords = []string{
	"Apartments", "Center", "Mall", "Hospital", "Hotel", "School", "Restaurant",
	"Bank", "Office", "Clinic", "Church", "Plaza", "Home", "Building",
}

var (
	contactFirstNames = []string{"John", "Jane", "Michael", "Emily", "David", "Sarah", "Robert", "Jennifer", "William", "Elizabeth"}
	contactLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
)

// IsBusinessName reports whether name looks like a commercial customer.
func IsBusinessName(name string) bool {
	for _, kw := range businessKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// GenerateCustomer fabricates customer number id.
func (g *Generator) GenerateCustomer(id int) domain.Customer {
	name := pick(g.rng, g.cfg.CustomerNames)
	business := IsBusinessName(name)
	first := pick(g.rng, contactFirstNames)
	last := pick(g.rng, contactLastNames)
	compact := strings.Join(strings.Fields(strings.ToLower(name)), "")

	c := domain.Customer{
		ID:             fmt.Sprintf("customer-%d", id),
		Name:           name,
		Phone:          fmt.Sprintf("(%d) %d-%d", intBetween(g.rng, 100, 999), intBetween(g.rng, 100, 999), intBetween(g.rng, 1000, 9999)),
		PrimaryAddress: g.address(),
		CreatedAt:      time.Date(g.cfg.StartingYear, time.January, 1, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}
	if business {
		c.ContactPerson = first + " " + last
		c.Email = fmt.Sprintf("%s.%s@%s.com", strings.ToLower(first), strings.ToLower(last), compact)
	} else {
		c.Email = compact + ".residence@example.com"
	}

	if chance(g.rng, 0.2) {
		billing := g.address()
		c.BillingAddress = &billing
	}
	if chance(g.rng, 0.3) {
		pref := "Preferred contact by phone"
		if chance(g.rng, 0.5) {
			pref = "Preferred contact by email"
		}
		c.Notes = "Customer notes: " + pref
	}
	return c
}

func (g *Generator) address() domain.Address {
	city := pick(g.rng, g.cfg.Cities)
	return domain.Address{
		Street: fmt.Sprintf("%d %s", intBetween(g.rng, 100, 9999), pick(g.rng, g.cfg.Streets)),
		City:   city.Name,
		State:  city.State,
		Zip:    pick(g.rng, city.Zips),
	}
}
