// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content holds the static reference data rendered by the cat page.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// TYPES
// =============================================================================

// Breed is an immutable description of one cat variety.
type Breed struct {
	Name        string
	Description string
	Image       string
	Origin      string
	// Popularity is a score in [0, 100].
	Popularity int
}

// Fact is one entry of the rotating "Did you know?" card.
type Fact struct {
	Text string
	Icon string
}

// Hero is the banner copy shown at the top of the page.
type Hero struct {
	Title    string
	Tagline  string
	Image    string
	ImageAlt string
	// Intro is markdown.
	Intro string
}

// ErrInvalidPopularity is returned by Validate for a score outside [0, 100].
var ErrInvalidPopularity = errors.New("popularity out of range")

// ErrEmptyTable is returned by Validate when a table has no rows.
var ErrEmptyTable = errors.New("empty table")

// =============================================================================
// TABLES
// =============================================================================

var hero = Hero{
	Title:    "Feline Fascination",
	Tagline:  "Discover the charm and mystery of our feline friends",
	Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3a/Cat03.jpg/1200px-Cat03.jpg",
	ImageAlt: "A majestic cat",
	Intro: "## The Enigmatic World of Cats\n\n" +
		"Cats have captivated humans for millennia with their **grace**, " +
		"**independence**, and **affectionate nature**. These enigmatic creatures " +
		"continue to be one of the most popular pets worldwide, cherished for their " +
		"companionship and unique personalities.\n",
}

var breeds = []Breed{
	{
		Name:        "Siamese",
		Description: "Known for their distinctive color points and blue eyes.",
		Image:       "https://upload.wikimedia.org/wikipedia/commons/2/25/Siam_lilacpoint.jpg",
		Origin:      "Thailand",
		Popularity:  85,
	},
	{
		Name:        "Persian",
		Description: "Recognized for their long, luxurious coat and flat face.",
		Image:       "https://upload.wikimedia.org/wikipedia/commons/1/15/White_Persian_Cat.jpg",
		Origin:      "Iran",
		Popularity:  90,
	},
	{
		Name:        "Maine Coon",
		Description: "One of the largest domestic cat breeds with a distinctive ruff.",
		Image:       "https://upload.wikimedia.org/wikipedia/commons/5/5f/Maine_Coon_cat_by_Tomitheos.JPG",
		Origin:      "United States",
		Popularity:  88,
	},
	{
		Name:        "British Shorthair",
		Description: "Famous for their round faces and dense, plush coats.",
		Image:       "https://upload.wikimedia.org/wikipedia/commons/9/9d/Britishblue.jpg",
		Origin:      "United Kingdom",
		Popularity:  82,
	},
	{
		Name:        "Scottish Fold",
		Description: "Characterized by their unique folded ears and owl-like appearance.",
		Image:       "https://upload.wikimedia.org/wikipedia/commons/5/5d/Adult_Scottish_Fold.jpg",
		Origin:      "Scotland",
		Popularity:  78,
	},
}

var facts = []Fact{
	{Text: "Cats spend approximately 70% of their lives sleeping.", Icon: "z"},
	{Text: "A group of cats is called a clowder.", Icon: "#"},
	{Text: "Cats have 32 muscles in each ear and can rotate them 180 degrees.", Icon: "^"},
	{Text: "A cat's nose print is unique, much like a human fingerprint.", Icon: "*"},
	{Text: "Cats can jump up to six times their body length.", Icon: "~"},
}

var features = []string{
	"Retractable claws for hunting and climbing",
	"Exceptional balance and agility",
	"Acute hearing and night vision",
	"Complex vocal communication",
	"Independent yet affectionate nature",
}

var careTips = []string{
	"Provide fresh water every day and a balanced, age-appropriate diet",
	"Keep the litter box clean and in a quiet spot",
	"Schedule a veterinary check-up at least once a year",
	"Offer scratching posts so claws stay healthy",
	"Play every day to keep your cat fit and engaged",
}

// =============================================================================
// ACCESSORS
// =============================================================================

// HeroBanner returns the banner copy.
func HeroBanner() Hero {
	return hero
}

// Breeds returns a copy of the breed table.
func Breeds() []Breed {
	out := make([]Breed, len(breeds))
	copy(out, breeds)
	return out
}

// Facts returns a copy of the fact table.
func Facts() []Fact {
	out := make([]Fact, len(facts))
	copy(out, facts)
	return out
}

// Features returns a copy of the characteristic list.
func Features() []string {
	out := make([]string, len(features))
	copy(out, features)
	return out
}

// CareTips returns a copy of the care-tip list.
func CareTips() []string {
	out := make([]string, len(careTips))
	copy(out, careTips)
	return out
}

// BreedByName finds a breed case-insensitively.
func BreedByName(name string) (Breed, bool) {
	name = strings.TrimSpace(name)
	for _, b := range breeds {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Breed{}, false
}

// Validate checks a breed table: it must be non-empty and every popularity
// must lie in [0, 100].
func Validate(table []Breed) error {
	if len(table) == 0 {
		return fmt.Errorf("breeds: %w", ErrEmptyTable)
	}
	for i, b := range table {
		if b.Popularity < 0 || b.Popularity > 100 {
			return fmt.Errorf("breed %d (%s): %d: %w", i, b.Name, b.Popularity, ErrInvalidPopularity)
		}
	}
	return nil
}
