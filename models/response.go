package models

// ColorResponse is the JSON shape of a full color representation
type ColorResponse struct {
	Hex  ColorHex  `json:"hex"`
	RGB  ColorRGB  `json:"rgb"`
	HSL  ColorHSL  `json:"hsl"`
	HSV  ColorHSV  `json:"hsv"`
	CMYK ColorCMYK `json:"cmyk"`
	LAB  ColorLAB  `json:"lab"`
	Name ColorName `json:"name"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	Fraction Fraction `json:"fraction"`
	R        int      `json:"r"`
	G        int      `json:"g"`
	B        int      `json:"b"`
	A        float64  `json:"a"`
	Value    string   `json:"value"`
}

type Fraction struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type ColorHSL struct {
	Fraction FractionHSL `json:"fraction"`
	H        int         `json:"h"`
	S        int         `json:"s"`
	L        int         `json:"l"`
	Value    string      `json:"value"`
}

type FractionHSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type ColorHSV struct {
	Fraction FractionHSV `json:"fraction"`
	Value    string      `json:"value"`
	H        int         `json:"h"`
	S        int         `json:"s"`
	V        int         `json:"v"`
}

type FractionHSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

type ColorCMYK struct {
	Fraction FractionCMYK `json:"fraction"`
	Value    string       `json:"value"`
	C        int          `json:"c"`
	M        int          `json:"m"`
	Y        int          `json:"y"`
	K        int          `json:"k"`
}

type FractionCMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

type ColorLAB struct {
	Value string  `json:"value"`
	L     float64 `json:"l"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
}

// ColorName describes the nearest CSS named color
type ColorName struct {
	Value           string `json:"value"`
	ClosestNamedHex string `json:"closest_named_hex"`
	ExactMatchName  bool   `json:"exact_match_name"`
	Distance        int    `json:"distance"`
}

// ConvertRequest is the body of POST /v1/colors/convert
type ConvertRequest struct {
	Input  string `json:"input"`
	Target string `json:"target,omitempty"`
}

// ComponentsRequest carries raw component values in the order of
// Format.Components(); alpha may be omitted.
type ComponentsRequest struct {
	Format     string    `json:"format"`
	Components []float64 `json:"components"`
}

// ConvertResponse is returned when a single target format was requested
type ConvertResponse struct {
	Input  string `json:"input"`
	Source Format `json:"source"`
	Target Format `json:"target"`
	Output string `json:"output"`
}

// ValidateRequest is the body of POST /v1/colors/validate
type ValidateRequest struct {
	Input  string `json:"input"`
	Format string `json:"format,omitempty"`
}

type ValidateResponse struct {
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
	Format *Format `json:"format"`
}

type DetectResponse struct {
	Input  string  `json:"input"`
	Format *Format `json:"format"`
}
