// Package model contains the persistence entities.
//
// Struct fields carry `db` tags matching the column names so rows can be
// scanned with pgx.RowToStructByName.
package model

import "time"

type Pokemon struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
}

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Country struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Owner optionally belongs to a Country.
type Owner struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	CountryID *int64 `db:"country_id"`
}

// FullName is the value used for duplicate detection.
func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

type Reviewer struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

// FullName is the value used for duplicate detection.
func (r Reviewer) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Review always references an existing Pokemon and Reviewer.
type Review struct {
	ID         int64  `db:"id"`
	Title      string `db:"title"`
	Text       string `db:"text"`
	Rating     int    `db:"rating"`
	PokemonID  int64  `db:"pokemon_id"`
	ReviewerID int64  `db:"reviewer_id"`
}
