package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Output string `config:"LOG_OUTPUT" default:"stdout"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	w, err := output(il.Output)
	if err != nil {
		return ctx, err
	}
	depend.Register(log.New(w, "", log.LstdFlags|log.LUTC|log.Lmsgprefix))
	return ctx, nil
}

func output(name string) (io.Writer, error) {
	switch name {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard":
		return io.Discard, nil
	}
	return nil, fmt.Errorf("unknown LOG_OUTPUT %q", name)
}
