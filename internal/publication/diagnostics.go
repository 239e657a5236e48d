package publication

import "fmt"

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Pipeline stages that can emit diagnostics.
const (
	StageMetadata = "metadata"
	StageManifest = "manifest"
	StageSpine    = "spine"
)

// Diagnostic describes a non-fatal problem found during extraction.
// Diagnostics never interrupt the pipeline; they are attached to the
// resulting Publication for the caller to surface or ignore.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Stage    string   `json:"stage" yaml:"stage"`
	Message  string   `json:"message" yaml:"message"`
	// Ref is the identifier or href the diagnostic refers to, when one exists.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Ref != "" {
		return fmt.Sprintf("%s: %s: %s (%s)", d.Severity, d.Stage, d.Message, d.Ref)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Stage, d.Message)
}

// report appends a diagnostic to the publication being built.
func (p *Publication) report(severity Severity, stage, message, ref string) {
	p.Diagnostics = append(p.Diagnostics, Diagnostic{
		Severity: severity,
		Stage:    stage,
		Message:  message,
		Ref:      ref,
	})
}
