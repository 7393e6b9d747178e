package saves

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a save folder name into a SaveInfo. Folder names look like
// "Some Name-1231415123_QuickSave_277": the character name runs up to the
// first '-', the save number is the last '_'-delimited token, and the
// category is a case-insensitive substring match anywhere in the name.
//
// The save number check runs before the character name check, so a name
// failing both reports ErrNotEnoughUnderscores.
func Parse(name string) (SaveInfo, error) {
	if !isASCII(name) {
		return SaveInfo{}, ErrNonASCIIName
	}

	number, err := saveNumber(name)
	if err != nil {
		return SaveInfo{}, err
	}

	character, err := characterName(name)
	if err != nil {
		return SaveInfo{}, err
	}

	return SaveInfo{
		FolderName:    name,
		CharacterName: character,
		Category:      category(name),
		SaveNumber:    number,
	}, nil
}

// category never fails; names matching neither pattern are Unrecognized.
// "quicksave" wins when a name contains both substrings.
func category(name string) Category {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "quicksave"):
		return CategoryQuick
	case strings.Contains(lower, "autosave"):
		return CategoryAuto
	default:
		return CategoryUnrecognized
	}
}

func characterName(name string) (string, error) {
	idx := strings.IndexByte(name, '-')
	if idx <= 0 {
		return "", ErrNameNotDetected
	}
	return name[:idx], nil
}

func saveNumber(name string) (uint16, error) {
	parts := strings.Split(name, "_")
	if len(parts) <= 1 {
		return 0, ErrNotEnoughUnderscores
	}

	last := parts[len(parts)-1]
	n, err := strconv.ParseUint(last, 10, 16)
	if err != nil {
		return 0, errors.Join(fmt.Errorf("%w: %q", ErrStringNotNumber, last), err)
	}
	return uint16(n), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
