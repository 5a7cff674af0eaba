package types

import (
	"errors"
	"fmt"
)

// PuyoCharacter identifies a playable character for per-character asset
// variants (portraits, voices, animation folders).
type PuyoCharacter int

// The playable cast.
const (
	CharNone PuyoCharacter = iota
	CharAccord
	CharAmitie
	CharArle
	CharCarbuncle
	CharDongurigaeru
	CharDraco
	CharKlug
	CharLemres
	CharMaguro
	CharOshareBones
	CharRaffina
	CharRider
	CharRingo
	CharRisukuma
	CharRulue
	CharSatan
	CharSchezo
	CharSig
	CharSuketoudara
	CharWitch
	CharYuRei
)

var characterNames = map[PuyoCharacter]string{
	CharNone:         "none",
	CharAccord:       "accord",
	CharAmitie:       "amitie",
	CharArle:         "arle",
	CharCarbuncle:    "carbuncle",
	CharDongurigaeru: "dongurigaeru",
	CharDraco:        "draco",
	CharKlug:         "klug",
	CharLemres:       "lemres",
	CharMaguro:       "maguro",
	CharOshareBones:  "oshare_bones",
	CharRaffina:      "raffina",
	CharRider:        "rider",
	CharRingo:        "ringo",
	CharRisukuma:     "risukuma",
	CharRulue:        "rulue",
	CharSatan:        "satan",
	CharSchezo:       "schezo",
	CharSig:          "sig",
	CharSuketoudara:  "suketoudara",
	CharWitch:        "witch",
	CharYuRei:        "yu_rei",
}

// String returns the canonical lowercase name for the character.
// Unknown values render as "character(<n>)".
func (c PuyoCharacter) String() string {
	if name, ok := characterNames[c]; ok {
		return name
	}
	return fmt.Sprintf("character(%d)", int(c))
}

// ErrUnknownCharacter is returned when a character name cannot be parsed.
var ErrUnknownCharacter = errors.New("unknown character")

// ParsePuyoCharacter resolves a canonical name back to its PuyoCharacter.
// Returns ErrUnknownCharacter for unrecognized names.
func ParsePuyoCharacter(name string) (PuyoCharacter, error) {
	for c, n := range characterNames {
		if n == name {
			return c, nil
		}
	}
	return CharNone, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
}
