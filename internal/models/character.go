package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Class is the combat class of a character. The integer values are part of the
// wire format and must not be reordered.
type Class int

const (
	ClassKnight Class = 0
	ClassCleric Class = 1
	ClassMage   Class = 2
)

var classNames = map[Class]string{
	ClassKnight: "Knight",
	ClassCleric: "Cleric",
	ClassMage:   "Mage",
}

// classAliases maps lowercase names (English and Portuguese) to classes
var classAliases = map[string]Class{
	"knight":    ClassKnight,
	"cavaleiro": ClassKnight,
	"cleric":    ClassCleric,
	"clerigo":   ClassCleric,
	"clérigo":   ClassCleric,
	"mage":      ClassMage,
	"mago":      ClassMage,
}

// ClassFromOrdinal returns the class with the given ordinal
func ClassFromOrdinal(ordinal int) (Class, bool) {
	c := Class(ordinal)
	return c, c.Valid()
}

// ParseClass accepts an ordinal ("2") or a class name ("Mage", "mago")
func ParseClass(s string) (Class, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if c, ok := ClassFromOrdinal(n); ok {
			return c, nil
		}
		return 0, fmt.Errorf("unknown class ordinal %d", n)
	}
	if c, ok := classAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown class %q", s)
}

func (c Class) Valid() bool {
	_, ok := classNames[c]
	return ok
}

func (c Class) Ordinal() int {
	return int(c)
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// MarshalJSON encodes the class as its ordinal
func (c Class) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalJSON decodes either an ordinal or a class name
func (c *Class) UnmarshalJSON(data []byte) error {
	var ordinal int
	if err := json.Unmarshal(data, &ordinal); err == nil {
		parsed, ok := ClassFromOrdinal(ordinal)
		if !ok {
			return fmt.Errorf("unknown class ordinal %d", ordinal)
		}
		*c = parsed
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("class must be an ordinal or a name: %w", err)
	}
	parsed, err := ParseClass(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type Character struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	HitPoints    int    `json:"pontosVida"`
	Strength     int    `json:"forca"`
	Defense      int    `json:"defesa"`
	Intelligence int    `json:"inteligencia"`
	Class        Class  `json:"classe"`
}

// Statistics summarizes the whole catalog
type Statistics struct {
	Count             int `json:"quantidadePersonagens"`
	IntelligenceTotal int `json:"somaInteligencia"`
}
