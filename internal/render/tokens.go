package render

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ruleRef   = lexer.SimpleRule{Name: "Ref", Pattern: `:[^:]*:`}
	ruleText  = lexer.SimpleRule{Name: "Text", Pattern: `[^:]+`}
	ruleColon = lexer.SimpleRule{Name: "Colon", Pattern: `:`}
)

var markupLexer = lexer.MustSimple([]lexer.SimpleRule{
	ruleRef,
	ruleText,
	ruleColon,
})

var markupParser = participle.MustBuild[Markup](
	participle.Lexer(markupLexer),
)

// Markup is message text split into literal runs and :name: references.
type Markup struct {
	Segments []Segment `parser:"@@*"`
}

type Segment struct {
	Ref   *string `parser:"  @Ref"`
	Text  *string `parser:"| @Text"`
	Colon bool    `parser:"| @Colon"`
}

// Name returns the reference without its enclosing colons.
func (s Segment) Name() string {
	if s.Ref == nil {
		return ""
	}
	ref := *s.Ref
	return ref[1 : len(ref)-1]
}

func ParseMarkup(text string) (Markup, error) {
	result, err := markupParser.ParseString("", text)
	if err != nil {
		return Markup{}, err
	}
	return *result, nil
}
