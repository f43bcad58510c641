package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// SelectFileWithFzf launches fzf with a list of common image files found under startDir.
// It returns the full path of the selected file or an error if selection failed.
//
// This implementation reuses the terminal detection helpers in terminal_preview.go
// (isKitty, isInlineImageCapable, isSixelCapable) to choose a
// reasonable --preview command for fzf. The preview will attempt to use the most
// capable renderer available for the detected terminal.
//
// Note: This implementation runs `find` directly (argv form, so startDir is never
// interpreted by a shell) and pipes its output into `fzf`. It requires both `find`
// and `fzf` to be available in PATH. startDir may be "." or any directory path.
func SelectFileWithFzf(startDir string) (string, error) {
	// Build a terminal-aware preview command for fzf. The preview command uses
	// fzf's {} replacement for the current file path. We prefer inline/kitty/sixel
	// renderers when the terminal detection indicates support; otherwise fall back
	// to `chafa` for pixelated rendering.
	//
	// The preview command tries multiple renderers in order, using `||` to fall
	// back if the preferred renderer is not available. Errors are redirected to
	// /dev/null to avoid cluttering the preview pane.
	//
	// Note: fzf's --preview option does not support complex shell constructs like
	// conditionals or functions, so we must use a single command line with `||`
	// chains to achieve fallback behavior.
	//
	// We also include a control sequence to clear kitty images before rendering
	// a new image, to avoid accumulating images in the terminal buffer.
	var previewCmd string

	// Helper chains: try best renderer, then fall back to chafa.
	if isKitty() {
		// Prefer kitty icat. If unavailable, try chafa.
		previewCmd = "printf \"\\x1b_Ga=d\\x1b\\\\\"; kitty +kitten icat --silent {} 2>/dev/null || chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	} else if isInlineImageCapable() {
		// Prefer imgcat (iTerm2 integration). If not present, try chafa.
		previewCmd = "imgcat {} 2>/dev/null  || chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	} else if isSixelCapable() {
		// Prefer sixel renderers. If img2sixel not present, try chafa.
		previewCmd = "img2sixel {} 2>/dev/null || chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	} else {
		// No detected image-capable terminal: use chafa's block-character rendering.
		previewCmd = "chafa --fill=block --symbols=block -s 80x40 {} 2>/dev/null"
	}

	// Run find and fzf as two separate argv-form processes connected by a pipe,
	// rather than a single shell command line: startDir is caller-supplied and
	// must never be interpreted by a shell (avoids command injection via
	// metacharacters like `$()` or backticks in startDir).
	findCmd := exec.Command("find", startDir, "-type", "f",
		"(",
		"-iname", "*.jpg", "-o",
		"-iname", "*.jpeg", "-o",
		"-iname", "*.png", "-o",
		"-iname", "*.gif", "-o",
		"-iname", "*.tif", "-o",
		"-iname", "*.tiff",
		")",
	)
	findOut, err := findCmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("error creating find pipe: %w", err)
	}
	if err := findCmd.Start(); err != nil {
		return "", fmt.Errorf("error starting find: %w", err)
	}

	fzfCmd := exec.Command("fzf", "--height", "100%", "--border", "--prompt=Files> ",
		"--ansi", "--preview", previewCmd, "--preview-window", "right:60%")
	fzfCmd.Stdin = findOut

	var out bytes.Buffer
	fzfCmd.Stdout = &out

	if err := fzfCmd.Run(); err != nil {
		_ = findCmd.Wait()
		// attempt to clear kitty images regardless of error
		clearKittyImages()
		return "", fmt.Errorf("error running fzf for files: %w", err)
	}
	// find failing (e.g. startDir doesn't exist) still lets fzf run with no
	// input; the selection result above is what matters to the caller.
	_ = findCmd.Wait()

	// clear preview images left behind by the previewer (kitty graphics)
	clearKittyImages()

	selection := strings.TrimSpace(out.String())
	if selection == "" {
		return "", fmt.Errorf("no file selected")
	}
	return selection, nil
}

// clearKittyImages emits the kitty graphics "delete" control sequence.
// Terminals that don't understand it will ignore it.
func clearKittyImages() {
	// ESC _ G a=d ESC \
	// We write to stdout so the control sequence targets the foreground terminal.
	fmt.Fprint(os.Stdout, "\x1b_Ga=d\x1b\\")
}
