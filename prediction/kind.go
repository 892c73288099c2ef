package prediction

// Kind identifies a prediction scheme. Values are bit-exact with spec.md
// §6's wire ids.
type Kind uint8

const (
	DeltaKind              Kind = 0
	MeshParallelogramKind  Kind = 1
	MultiParallelogramKind Kind = 2
	TexCoordKind           Kind = 5
	NormalKind             Kind = 6
	DerivativeKind         Kind = 7
	NoPredictionKind       Kind = 0xFE
	InvalidKind            Kind = 0xFF
)
