// Package watermark embeds a customer license notice into a theme archive.
package watermark

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// License identifies the customer a copy of the archive is issued to.
type License struct {
	Name         string
	Email        string
	Phone        string
	BusinessName string
	OrderID      string
	PurchasedAt  time.Time
}

// noticeFiles are standalone license entries written into every copy.
var noticeFiles = []string{"LICENSE.txt", "assets/LICENSE.txt"}

// stampTargets are text assets that get the notice prepended when present.
var stampTargets = []string{"assets/theme.js", "assets/theme.css", "layout/theme.liquid"}

const rule = "═══════════════════════════════════════════════════════════════"

// Notice renders the plain-text license block for the given customer.
func Notice(l License) string {
	var b strings.Builder
	b.WriteString("/*\n")
	b.WriteString(" * " + rule + "\n")
	b.WriteString(" * APEX THEME - LICENSED COPY\n")
	b.WriteString(" * " + rule + "\n")
	b.WriteString(" *\n")
	b.WriteString(" * This theme is licensed to:\n")
	fmt.Fprintf(&b, " * Name: %s\n", l.Name)
	fmt.Fprintf(&b, " * Email: %s\n", l.Email)
	fmt.Fprintf(&b, " * Phone: %s\n", l.Phone)
	if l.BusinessName != "" {
		fmt.Fprintf(&b, " * Business: %s\n", l.BusinessName)
	}
	b.WriteString(" *\n")
	fmt.Fprintf(&b, " * Purchase ID: %s\n", l.OrderID)
	fmt.Fprintf(&b, " * Purchase Date: %s\n", l.PurchasedAt.UTC().Format(time.RFC3339))
	b.WriteString(" *\n")
	b.WriteString(" * This is a single-use license. Redistribution is prohibited.\n")
	b.WriteString(" * Any unauthorized sharing will result in license revocation.\n")
	b.WriteString(" *\n")
	b.WriteString(" * " + rule + "\n")
	b.WriteString(" */\n")
	return b.String()
}

// Apply rewrites the ZIP archive with the license notice embedded: the notice
// is written as LICENSE.txt at the root and under assets/, and prepended to
// each stamp target that exists in the archive. Targets absent from the input
// are skipped. All other entries keep their content byte for byte.
func Apply(archive []byte, l License) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	notice := Notice(l)

	skip := make(map[string]bool, len(noticeFiles))
	for _, name := range noticeFiles {
		skip[name] = true
	}
	stamp := make(map[string]bool, len(stampTargets))
	for _, name := range stampTargets {
		stamp[name] = true
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, name := range noticeFiles {
		f, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		if _, err := f.Write([]byte(notice)); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}

	for _, entry := range reader.File {
		if skip[entry.Name] {
			continue
		}
		if err := copyEntry(w, entry, stamp[entry.Name], notice); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

func copyEntry(w *zip.Writer, entry *zip.File, stamped bool, notice string) error {
	rc, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", entry.Name, err)
	}
	defer rc.Close()

	header := entry.FileHeader
	out, err := w.CreateHeader(&header)
	if err != nil {
		return fmt.Errorf("create %s: %w", entry.Name, err)
	}

	if stamped {
		if _, err := io.WriteString(out, notice+"\n"); err != nil {
			return fmt.Errorf("stamp %s: %w", entry.Name, err)
		}
	}

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("copy %s: %w", entry.Name, err)
	}
	return nil
}
