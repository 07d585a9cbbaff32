package factory

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/config"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/logger"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/storage/filesystem"
	"github.com/hasirciogluhq/xweb-server/cmd/webserver/internal/storage/memory"
)

func TestFactories(t *testing.T) {
	logger.Setup(io.Discard, slog.LevelInfo)

	root := t.TempDir()
	cfg := config.Default()
	cfg.Root = root
	cfg.LegacyContentType = true
	cfg.ReadTimeout = 2 * time.Second

	source, err := NewSourceFactory(cfg).Create()
	if err != nil {
		t.Fatal(err)
	}
	fs, ok := source.(*filesystem.Source)
	if !ok {
		t.Fatalf("source is %T, want *filesystem.Source", source)
	}
	if fs.Root != root {
		t.Errorf("root = %q, want %q", fs.Root, root)
	}

	handler := NewHandlerFactory(cfg).Create(source)
	if !handler.LegacyContentType || handler.ReadTimeout != 2*time.Second {
		t.Errorf("handler not configured: %+v", handler)
	}
	if handler.Source != source || handler.Stats == nil {
		t.Error("handler missing source or stats")
	}
}

func TestSourceFactoryMemory(t *testing.T) {
	logger.Setup(io.Discard, slog.LevelInfo)

	cfg := config.Default()
	cfg.MemoryFiles = "a.txt=hello,b.html=<p>hi</p>"

	source, err := NewSourceFactory(cfg).Create()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := source.(*memory.Source); !ok {
		t.Fatalf("source is %T, want *memory.Source", source)
	}
	names, err := source.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "a.txt" || names[1] != "b.html" {
		t.Errorf("names = %v", names)
	}

	cfg.MemoryFiles = "a.txt"
	if _, err := NewSourceFactory(cfg).Create(); err == nil {
		t.Error("invalid mapping accepted")
	}
}
