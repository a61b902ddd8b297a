package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// InitDotEnv loads environment files before the rest of the configuration is read.
// Variables already present in the environment win over the files, and missing files are skipped.
type InitDotEnv struct {
	Logger *log.Logger `resolve:""`
	Files  string      `config:"DOTENV_FILES" default:".env"`
}

// Initialize loads every comma separated file of DOTENV_FILES in order.
func (i InitDotEnv) Initialize(ctx context.Context) (context.Context, error) {
	for _, file := range strings.Split(i.Files, ",") {
		file = strings.TrimSpace(file)
		if file == "" || file == unset {
			continue
		}
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return ctx, fmt.Errorf("failed to load %s: %w", file, err)
		}
		i.Logger.Printf("InitDotEnv: loaded %s", file)
	}
	return ctx, nil
}
