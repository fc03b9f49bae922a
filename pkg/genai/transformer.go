package genai

import "context"

// Artifact is one produced image as a self-contained encoded string
// (data URL carrying format and bytes). Callers never decode pixel data.
type Artifact string

// Image is raw binary input for analyze/edit calls.
type Image struct {
	MimeType string
	Data     []byte
}

// Option allows optional generation parameters.
type Option func(*Options)

type Options struct {
	Temperature float64
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Transformer defines the contract for the remote multimodal backend.
type Transformer interface {
	// Analyze describes an image. Errors when the remote call fails or no
	// usable text comes back.
	Analyze(ctx context.Context, instruction string, image Image, options ...Option) (string, error)

	// Generate produces images from a bare prompt. Errors when zero image
	// artifacts are returned.
	Generate(ctx context.Context, instruction string, options ...Option) ([]Artifact, error)

	// Edit produces variants of an image under an instruction. Errors when
	// zero image artifacts are returned.
	Edit(ctx context.Context, instruction string, image Image, options ...Option) ([]Artifact, error)
}
