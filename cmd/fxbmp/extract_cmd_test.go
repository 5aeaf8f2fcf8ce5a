package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestExtractCommand(t *testing.T) {
	fs := useMemFs(t, map[string][]byte{"/card.bin": helloCard()})

	out, _, err := execCmd(t, newRootCommand(), "extract", "-o", "/out", "/card.bin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(out, "1 directories, 1 files extracted to /out") {
		t.Errorf("unexpected output:\n%s", out)
	}

	got, err := afero.ReadFile(fs, "/out/SAVES/HELLO.TXT")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Errorf("HELLO.TXT = %q, want %q", got, "hello world")
	}
}

func TestExtractCommand_Overwrite(t *testing.T) {
	useMemFs(t, map[string][]byte{"/card.bin": helloCard()})

	if _, _, err := execCmd(t, newRootCommand(), "extract", "-o", "/out", "/card.bin"); err != nil {
		t.Fatalf("first extract failed: %v", err)
	}
	if _, _, err := execCmd(t, newRootCommand(), "extract", "-o", "/out", "/card.bin"); err == nil {
		t.Error("extracting over existing files should fail")
	}
	if _, _, err := execCmd(t, newRootCommand(), "extract", "-o", "/out", "--overwrite", "/card.bin"); err != nil {
		t.Errorf("extract --overwrite failed: %v", err)
	}
}

func TestExtractCommand_Progress(t *testing.T) {
	fs := useMemFs(t, map[string][]byte{"/card.bin": helloCard()})

	_, stderr, err := execCmd(t, newRootCommand(), "extract", "-o", "/out", "--progress", "/card.bin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(stderr, "extracting") {
		t.Errorf("progress bar missing from stderr:\n%s", stderr)
	}
	if ok, _ := afero.Exists(fs, "/out/SAVES/HELLO.TXT"); !ok {
		t.Error("HELLO.TXT was not extracted")
	}
}

func TestExtractCommand_RootFileWarning(t *testing.T) {
	card := helloCard()
	// Second root slot: a file next to the SAVES directory.
	copy(card[1024+32:], "ROOT    TXT")
	card[1024+32+0x0B] = 0x20
	card[1024+32+0x1A] = 0x03
	card[1024+32+0x1C] = 0x05
	fs := useMemFs(t, map[string][]byte{"/card.bin": card})

	out, _, err := execCmd(t, newRootCommand(), "extract", "-o", "/out", "/card.bin")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(out, "warning: ROOT.TXT: file in the root directory") {
		t.Errorf("warning missing:\n%s", out)
	}

	got, err := afero.ReadFile(fs, "/out/ROOT.TXT")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("ROOT.TXT = %q, want %q", got, "hello")
	}
}
