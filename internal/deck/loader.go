package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return result, nil
}

// loadCards loads every .yml deck file under dir and concatenates their
// cards. Files are visited in a stable order. A missing directory yields an
// empty deck, not an error.
func loadCards[T any](dir string) ([]T, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yml" && ext != ".yaml" {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk deck directory %s > %w", dir, err)
	}
	sort.Strings(paths)

	var cards []T
	for _, path := range paths {
		fileCards, err := readYamlFile[[]T](path)
		if err != nil {
			return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
		}
		cards = append(cards, fileCards...)
	}
	return cards, nil
}

// LoadWordCards reads all word decks under dir.
func LoadWordCards(dir string) ([]WordCard, error) {
	return loadCards[WordCard](dir)
}

// LoadVerbCards reads all verb decks under dir.
func LoadVerbCards(dir string) ([]VerbCard, error) {
	return loadCards[VerbCard](dir)
}

// LoadSentenceCards reads all sentence decks under dir and assigns ids to
// cards that lack one.
func LoadSentenceCards(dir string) ([]SentenceCard, error) {
	cards, err := loadCards[SentenceCard](dir)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		cards[i].EnsureID()
	}
	return cards, nil
}
