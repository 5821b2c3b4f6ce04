// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/mtx4/transform"
)

// renderJSON writes r as one line of JSON.
func renderJSON(w io.Writer, r transform.Report) error {
	return json.NewEncoder(w).Encode(r)
}

// renderTable writes r for humans, one labelled block per step.
func renderTable(w io.Writer, r transform.Report, prec int) error {
	p := message.NewPrinter(language.English)
	tw := &tableWriter{w: w, p: p, prec: prec}

	tw.point("identity · [4 3 2 1]", r.IdentityResult[:])
	tw.matrix("sample matrix", r.SomeMatrix)
	tw.matrix("identity · sample", r.SomeMatrixResult)
	tw.matrix("translate(50, 100, 0)", r.TranslationMatrix)
	tw.matrix("scale(1.5, 0.7, 1)", r.ScaleMatrix)
	tw.point("point", []float64{r.Point.X, r.Point.Y})
	tw.scalar("distance from origin", r.Distance)
	tw.scalar("angle (deg)", r.Angle)
	tw.scalar("angle (rad)", r.Radians)
	tw.point("rotated point", []float64{r.TransformedPoint.X, r.TransformedPoint.Y})
	tw.matrix("rotate X", r.RotateXMatrix)
	tw.matrix("rotate Y", r.RotateYMatrix)
	tw.matrix("rotate Z", r.RotateZMatrix)
	tw.matrix("scale → translate → rotate", r.TransformMatrix3)
	tw.matrix("… and back again", r.TransformMatrix6)

	return tw.err
}

// tableWriter keeps the first write error so callers check once.
type tableWriter struct {
	w    io.Writer
	p    *message.Printer
	prec int
	err  error
}

func (t *tableWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = t.p.Fprintf(t.w, format, args...)
}

func (t *tableWriter) scalar(label string, v float64) {
	t.printf("%s\n  %.*f\n\n", label, t.prec, v)
}

func (t *tableWriter) point(label string, v []float64) {
	t.printf("%s\n ", label)
	for _, x := range v {
		t.printf(" %12.*f", t.prec, x)
	}
	t.printf("\n\n")
}

func (t *tableWriter) matrix(label string, m transform.Matrix4) {
	t.printf("%s\n", label)
	for r := 0; r < 4; r++ {
		t.printf(" ")
		for c := 0; c < 4; c++ {
			t.printf(" %12.*f", t.prec, m.At(r, c))
		}
		t.printf("\n")
	}
	t.printf("\n")
}
