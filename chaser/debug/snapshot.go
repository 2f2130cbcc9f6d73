package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-chaser/chaser/game"
	"github.com/valerio/go-chaser/chaser/matrix"
)

const (
	// CellPixels is the size of one element in PNG snapshots, including a
	// one pixel gap.
	CellPixels = 8
)

var (
	litColor  = color.RGBA{R: 0xFF, G: 0x30, B: 0x20, A: 0xFF}
	darkColor = color.RGBA{R: 0x20, G: 0x08, B: 0x08, A: 0xFF}
	gapColor  = color.RGBA{A: 0xFF}
)

// TakeSnapshot handles F12 snapshot logic for backends
func TakeSnapshot(frame *matrix.Frame) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	if _, err := SaveFramePNGToDir(frame, "chaser_snapshot_"+timestamp, ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// RenderFrame draws a frame as an RGBA image.
func RenderFrame(frame *matrix.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, game.Columns*CellPixels, game.Rows*CellPixels))

	for py := 0; py < game.Rows*CellPixels; py++ {
		for px := 0; px < game.Columns*CellPixels; px++ {
			c := gapColor
			if px%CellPixels != CellPixels-1 && py%CellPixels != CellPixels-1 {
				c = darkColor
				if frame.Lit(game.Position{X: px / CellPixels, Y: py / CellPixels}) {
					c = litColor
				}
			}
			img.SetRGBA(px, py, c)
		}
	}
	return img
}

// SaveFramePNGToDir saves a frame as <baseName>.png in directory (the
// working directory when empty) and returns the path written.
func SaveFramePNGToDir(frame *matrix.Frame, baseName, directory string) (string, error) {
	outputDir, err := outputDir(directory)
	if err != nil {
		return "", err
	}

	filePath := filepath.Join(outputDir, baseName+".png")
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, RenderFrame(frame)); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "lit", frame.Count(), "format", "PNG")
	return filePath, nil
}

// SaveFrameTextToDir saves a frame as <baseName>.txt with a small header.
func SaveFrameTextToDir(frame *matrix.Frame, data *Data, baseName, directory string) (string, error) {
	outputDir, err := outputDir(directory)
	if err != nil {
		return "", err
	}

	filePath := filepath.Join(outputDir, baseName+".txt")
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Matrix Frame Snapshot\n")
	if data != nil {
		fmt.Fprintf(file, "# Frame: %d, Ticks: %d, Catches: %d\n", data.Frames, data.Ticks, data.Catches)
		fmt.Fprintf(file, "# Player: %v, Target: %v\n", data.Player, data.Target)
	}
	fmt.Fprintf(file, "# Legend: #=lit .=dark\n")
	fmt.Fprintf(file, "#\n")
	if _, err := file.WriteString(frame.String()); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	return filePath, nil
}

func outputDir(directory string) (string, error) {
	if directory != "" {
		return directory, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}
