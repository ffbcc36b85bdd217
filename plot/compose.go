// Copyright 2023 The titanic-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// A panel is one independently rendered SVG document positioned
// inside a composite figure.
type panel struct {
	x, y int
	doc  []byte
}

// composite writes a single SVG document embedding each panel as a
// nested <svg> element at its position.
func composite(w io.Writer, width, height int, panels []panel) error {
	s := svg.New(w)
	s.Start(width, height)
	for _, p := range panels {
		frag, err := nest(p.doc, p.x, p.y)
		if err != nil {
			return err
		}
		if _, err := w.Write(frag); err != nil {
			return err
		}
	}
	s.End()
	return nil
}

// nest rewrites a complete SVG document so it can be embedded in an
// enclosing document at (x, y): the XML prologue is dropped and the
// root element gains position attributes. Nested <svg> elements carry
// their own width and height, so panels clip independently.
func nest(doc []byte, x, y int) ([]byte, error) {
	i := bytes.Index(doc, []byte("<svg"))
	if i < 0 {
		return nil, fmt.Errorf("plot: panel is not an SVG document")
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg x="%d" y="%d"`, x, y)
	buf.Write(doc[i+len("<svg"):])
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
