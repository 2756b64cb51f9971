package compiler

import (
	"fmt"
	"strings"
)

const reportRuleWidth = 60

type reportBuilder struct {
	strings.Builder
}

func (builder *reportBuilder) line(format string, args ...interface{}) {
	fmt.Fprintf(builder, format, args...)
	builder.WriteByte('\n')
}

func (builder *reportBuilder) banner(title string) {
	builder.line(title)
	builder.line(strings.Repeat("=", reportRuleWidth))
	builder.line("")
}

func (builder *reportBuilder) section(title string) {
	builder.line(title)
	builder.line(strings.Repeat("-", reportRuleWidth))
}

func (builder *reportBuilder) diagnostics(diagnostics []*Diagnostic) {
	for i, diagnostic := range diagnostics {
		builder.line("%d. %s", i+1, diagnostic)
	}
}

func (builder *reportBuilder) warnings(warnings []*Diagnostic) {
	if len(warnings) == 0 {
		return
	}
	builder.line("")
	builder.section("Warnings:")
	builder.diagnostics(warnings)
}

// FormatTokens lists tokens grouped by kind, kinds in order of first appearance.
func FormatTokens(tokens []*Token) string {
	if len(tokens) == 0 {
		return "No tokens found."
	}
	builder := &reportBuilder{}
	builder.banner("LEXICAL ANALYSIS RESULTS")
	builder.line("Total Tokens: %d", len(tokens))
	builder.line("")

	var kinds []TokenKind
	groups := map[TokenKind][]*Token{}
	for _, token := range tokens {
		if _, ok := groups[token.Kind]; !ok {
			kinds = append(kinds, token.Kind)
		}
		groups[token.Kind] = append(groups[token.Kind], token)
	}
	for _, kind := range kinds {
		builder.line("")
		builder.section(fmt.Sprintf("%ss (%d):", kind, len(groups[kind])))
		for _, token := range groups[kind] {
			builder.line("  Line %d: \"%s\"", token.Line, token.Content)
		}
	}
	return builder.String()
}

// FormatSyntax prints construct counts on success, or the numbered errors.
func FormatSyntax(result *SyntaxResult) string {
	builder := &reportBuilder{}
	if !result.Success {
		builder.banner("SYNTAX ANALYSIS ERRORS")
		builder.line("Found %d error(s):", len(result.Errors))
		builder.line("")
		builder.diagnostics(result.Errors)
		return builder.String()
	}
	builder.banner("SYNTAX ANALYSIS RESULTS")
	builder.line("✓ %s", result.Message)
	builder.line("")
	builder.section("Parse Tree Nodes:")

	var kinds []ConstructKind
	counts := map[ConstructKind]int{}
	for _, construct := range result.Constructs {
		if counts[construct.Kind] == 0 {
			kinds = append(kinds, construct.Kind)
		}
		counts[construct.Kind]++
	}
	for _, kind := range kinds {
		builder.line("  %s: %d", kind, counts[kind])
	}
	return builder.String()
}

// FormatSemantic prints the symbol table and warnings on success, or errors followed by warnings.
func FormatSemantic(result *SemanticResult) string {
	builder := &reportBuilder{}
	builder.banner("SEMANTIC ANALYSIS RESULTS")
	if !result.Success {
		builder.line("Found %d error(s):", len(result.Errors))
		builder.line("")
		builder.diagnostics(result.Errors)
		builder.warnings(result.Warnings)
		return builder.String()
	}
	builder.line("✓ %s", result.Message)
	builder.line("")
	builder.section("Symbol Table:")
	if len(result.Symbols) == 0 {
		builder.line("  No variables found")
	}
	for _, symbol := range result.Symbols {
		builder.line("  %s (%s) - Line %d", symbol.Name, symbol.Type, symbol.Line)
		builder.line("    Initialized: %s", yesOrNo(symbol.Initialized))
		builder.line("    Used: %s", yesOrNo(symbol.Used))
	}
	if len(result.Functions) > 0 {
		builder.line("")
		builder.section("Functions:")
		for _, function := range result.Functions {
			builder.line("  %s(%s) %s - Line %d", function.Name, formatParameters(function.Parameters),
				function.ReturnType, function.Line)
			builder.line("    Called: %s", yesOrNo(function.Used))
		}
	}
	builder.warnings(result.Warnings)
	return builder.String()
}

func formatParameters(params []*Parameter) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, param.Type+" "+param.Name)
	}
	return strings.Join(parts, ", ")
}

func yesOrNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
