package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"escrow-engine/internal/models"

	"gopkg.in/yaml.v3"
)

// File is the YAML seed document: opening balances and items listed at startup
type File struct {
	Balances map[string]int64 `yaml:"balances"`
	Listings []Listing        `yaml:"listings"`
}

type Listing struct {
	Seller      string `yaml:"seller"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       int64  `yaml:"price"`
}

// Engine is the part of the escrow service the seed is applied through
type Engine interface {
	Deposit(caller models.Address, amount int64) (int64, error)
	List(seller models.Address, name, description string, price int64) (models.Item, error)
}

// Load reads and parses a seed file
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("seed: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode: %w", err)
	}
	return f, nil
}

// Apply credits balances in account order, then lists items in file order, so item ids
// and events match what the same calls over HTTP would produce.
func (f File) Apply(engine Engine) (listed []models.Item, err error) {
	accounts := make([]string, 0, len(f.Balances))
	for account := range f.Balances {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	for _, account := range accounts {
		if _, err := engine.Deposit(models.Address(account), f.Balances[account]); err != nil {
			return nil, fmt.Errorf("seed: balance for %s: %w", account, err)
		}
	}

	for i, l := range f.Listings {
		item, err := engine.List(models.Address(l.Seller), l.Name, l.Description, l.Price)
		if err != nil {
			return listed, fmt.Errorf("seed: listing %d (%s): %w", i, l.Name, err)
		}
		listed = append(listed, item)
	}
	return listed, nil
}
