package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/ncruces/zenity"
)

// confirmAndOpen asks before handing url to the system browser. Dialogs
// block, so this runs off the game goroutine.
func confirmAndOpen(url string) {
	go func() {
		if err := confirmLink(url); err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				slog.Error("link dialog", "url", url, "err", err)
			}
			return
		}
		if err := openBrowser(url); err != nil {
			slog.Error("opening link", "url", url, "err", err)
		}
	}()
}

func confirmLink(url string) error {
	return zenity.Question(
		fmt.Sprintf("Open %s?", displayURL(url)),
		zenity.Title("Open link"),
		zenity.QuestionIcon,
		zenity.OKLabel("Open"),
		zenity.CancelLabel("Stay"),
	)
}

// displayURL strips the scheme noise users don't need to read.
func displayURL(url string) string {
	for _, prefix := range []string{"mailto:", "https://", "http://"} {
		if strings.HasPrefix(url, prefix) {
			return strings.TrimPrefix(url, prefix)
		}
	}
	return url
}

// browserCommand returns the platform command that opens url.
func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}

func openBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return nil
}
