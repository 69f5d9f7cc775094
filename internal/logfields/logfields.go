package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID     = "build_id"
	KeyStage       = "stage"
	KeyDurationMS  = "duration_ms"
	KeySlug        = "slug"
	KeyTitle       = "title"
	KeyPath        = "path"
	KeyFile        = "file"
	KeyCount       = "count"
	KeyOutput      = "output"
	KeyFingerprint = "fingerprint"
	KeyTemplate    = "template"
	KeyAddr        = "addr"
	KeyOutcome     = "outcome"
	KeyError       = "error"
	KeyOp          = "op"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr       { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr       { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Slug(s string) slog.Attr           { return slog.String(KeySlug, s) }
func Title(t string) slog.Attr          { return slog.String(KeyTitle, t) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func File(f string) slog.Attr           { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func Output(dir string) slog.Attr       { return slog.String(KeyOutput, dir) }
func Fingerprint(fp string) slog.Attr   { return slog.String(KeyFingerprint, fp) }
func Template(name string) slog.Attr    { return slog.String(KeyTemplate, name) }
func Addr(a string) slog.Attr           { return slog.String(KeyAddr, a) }
func Outcome(o string) slog.Attr        { return slog.String(KeyOutcome, o) }
func Op(op string) slog.Attr            { return slog.String(KeyOp, op) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
