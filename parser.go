package template

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Open/close markers for processing instructions. The parser reuses
// fasttemplate as its tokenizer, repurposed from placeholder substitution
// to a processing-instruction scanner: the `TagFunc` callback receives
// each instruction's raw body instead of a value to substitute, and
// literal runs between instructions are captured verbatim by a custom
// io.Writer.
const (
	piOpen  = "<?"
	piClose = "?>"
)

var rangeShorthand = regexp.MustCompile(`^(-?\d+)to(-?\d+)by(-?\d+)$`)

// ParseFile loads the template text at path and compiles it. Fails if
// the template exceeds maxTemplateBytes or on any parse error.
func ParseFile(path string) (*Tree, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bin) > maxTemplateBytes {
		return nil, newParseError(len(bin), "template %q exceeds %d bytes", path, maxTemplateBytes)
	}
	return compile(string(bin))
}

// ParseString compiles template from an in-memory string.
func ParseString(tmpl string) (*Tree, error) {
	if len(tmpl) > maxTemplateBytes {
		return nil, newParseError(len(tmpl), "template exceeds %d bytes", maxTemplateBytes)
	}
	return compile(tmpl)
}

func compile(tmpl string) (*Tree, error) {
	vars := NewVariablesTable()
	idCounter := new(int)
	root, err := parseTemplate(tmpl, vars, idCounter, 0)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root, vars: vars, source: tmpl}, nil
}

// nextID returns the next compilation-unique segment id.
func nextID(counter *int) int {
	id := *counter
	*counter++
	return id
}

// parseTemplate compiles one template body into its implicit root Block,
// configured as `count=1 context=combined`.
func parseTemplate(tmpl string, vars *VariablesTable, idCounter *int, includeDepth int) (*Block, error) {
	ft, err := fasttemplate.NewTemplate(tmpl, piOpen, piClose)
	if err != nil {
		return nil, newParseError(0, "missing closing %q: %v", piClose, err)
	}

	root := &Block{id: nextID(idCounter), rule: RuleCombined, min: 1, max: 1}
	stack := []*Block{root}
	skipWhitespace := false
	offset := 0
	var perr error

	collector := writerFunc(func(p []byte) (int, error) {
		offset += len(p)
		if perr != nil {
			return len(p), nil
		}
		text := p
		if skipWhitespace {
			text = trimLeadingNonSpaceWhitespace(text)
			skipWhitespace = false
		}
		if len(text) > 0 {
			top := stack[len(stack)-1]
			top.children = append(top.children, &Literal{id: nextID(idCounter), text: append([]byte(nil), text...)})
		}
		return len(p), nil
	})

	_, execErr := ft.ExecuteFunc(collector, func(w io.Writer, tag string) (int, error) {
		tagOffset := offset
		offset += len(piOpen) + len(tag) + len(piClose)
		if perr != nil {
			return 0, nil
		}
		defer func() {
			if pe, ok := perr.(*ParseError); ok && pe.Offset == 0 {
				pe.Offset = tagOffset
			}
		}()
		kind, args, derr := decodeInstruction(tag)
		if derr != nil {
			perr = derr
			return 0, nil
		}

		switch kind {
		case "comment":
			// emits nothing
		case "begin":
			blk, verr := newBlock(args, vars, idCounter)
			if verr != nil {
				perr = verr
				return 0, nil
			}
			top := stack[len(stack)-1]
			top.children = append(top.children, blk)
			stack = append(stack, blk)
			skipWhitespace = true
		case "end":
			if len(stack) <= 1 {
				perr = newParseError(0, "gen.end with no matching gen.begin")
				return 0, nil
			}
			top := stack[len(stack)-1]
			if n, ok := args["name"]; ok && n != "" && n != top.name {
				perr = newParseError(0, "gen.end name=%q does not match gen.begin name=%q", n, top.name)
				return 0, nil
			}
			stack = stack[:len(stack)-1]
			skipWhitespace = true
		case "value":
			seg := newValue(args, vars, idCounter)
			appendSeg(stack, seg)
		case "words":
			seg := newWords(args, vars, idCounter)
			appendSeg(stack, seg)
		case "date":
			seg := newDate(args, vars, idCounter)
			appendSeg(stack, seg)
		case "variable":
			seg, loaded, verr := newVariable(args, vars, idCounter)
			if verr != nil {
				perr = verr
				return 0, nil
			}
			if !loaded {
				appendSeg(stack, seg)
			}
		case "file":
			seg, verr := newFile(args, vars, idCounter, includeDepth)
			if verr != nil {
				perr = verr
				return 0, nil
			}
			appendSeg(stack, seg)
		default:
			perr = newParseError(0, "unrecognized segment kind %q", kind)
		}
		return 0, nil
	})
	if perr != nil {
		return nil, perr
	}
	if execErr != nil {
		return nil, newParseError(offset, "%v", execErr)
	}
	if len(stack) != 1 {
		return nil, newParseError(len(tmpl), "gen.begin without matching gen.end")
	}
	return root, nil
}

func appendSeg(stack []*Block, seg Segment) {
	if seg == nil {
		return
	}
	top := stack[len(stack)-1]
	top.children = append(top.children, seg)
}

// writerFunc adapts a func([]byte) (int, error) to io.Writer.
type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// trimLeadingNonSpaceWhitespace strips leading \n \r \t \f (but not plain
// spaces) from text. After each gen.begin and gen.end the parser skips
// any non-space whitespace so templates may be formatted without
// polluting output.
func trimLeadingNonSpaceWhitespace(text []byte) []byte {
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n', '\r', '\t', '\f':
			i++
		default:
			return text[i:]
		}
	}
	return text[i:]
}

// decodeInstruction splits a processing instruction's raw body (the text
// between `<?` and `?>`) into its kind token and key=value argument map.
// The first token after `<?` must start with `gen.`. The body of a
// gen.comment is free text and is not decoded into arguments.
func decodeInstruction(body string) (kind string, args map[string]string, err error) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return "", nil, newParseError(0, "empty processing instruction")
	}
	if !strings.HasPrefix(fields[0], "gen.") {
		return "", nil, newParseError(0, "processing instruction %q does not start with gen.", fields[0])
	}
	kind = lowerASCII(strings.TrimPrefix(fields[0], "gen."))
	if kind == "comment" {
		return kind, nil, nil
	}
	args = make(map[string]string, len(fields)-1)
	for _, f := range fields[1:] {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return "", nil, newParseError(0, "argument %q missing '='", f)
		}
		args[lowerASCII(k)] = v
	}
	return kind, args, nil
}

// decodeCommon implements the shared parameter decoder: name, order,
// count, min, max, factor, range, save.
func decodeCommon(args map[string]string, vars *VariablesTable) Common {
	c := Common{
		name:     args["name"],
		zipfSkew: defaultZipfSkew,
	}
	if d, ok := parseDistribution(args["order"]); ok {
		c.dist = d
	}
	if s, ok := args["skew"]; ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			c.zipfSkew = f
		}
	}

	if rv, ok := args["range"]; ok {
		if m := rangeShorthand.FindStringSubmatch(rv); m != nil {
			a, _ := strconv.ParseInt(m[1], 10, 64)
			b, _ := strconv.ParseInt(m[2], 10, 64)
			f, _ := strconv.ParseInt(m[3], 10, 64)
			c.min, c.max, c.factor = a, b, f
		}
	} else {
		c.min = expandDollarInt(vars, args["min"], 0)
		c.max = expandDollarInt(vars, args["max"], DefaultMax-1)
		c.factor = expandDollarInt(vars, args["factor"], 1)
	}

	if cv, ok := args["count"]; ok {
		n := expandDollarInt(vars, cv, 0)
		c.min, c.max = n, n
	}

	if c.factor < 1 {
		c.factor = 1 // invariant: factor >= 1
	}
	if c.min > c.max {
		c.max = c.min // invariant: min <= max, decoder coerces max upward
	}
	c.save = args["save"]
	return c
}

func newValue(args map[string]string, vars *VariablesTable, idCounter *int) Segment {
	c := decodeCommon(args, vars)
	c.id = nextID(idCounter)
	v := &Value{Common: c, format: args["format"]}
	if rv, ok := args["ratio"]; ok {
		if f, err := strconv.ParseFloat(rv, 64); err == nil && f > 0 {
			v.ratio = &f
		}
	}
	return v
}

func newWords(args map[string]string, vars *VariablesTable, idCounter *int) Segment {
	c := decodeCommon(args, vars)
	c.id = nextID(idCounter)
	return &Words{Common: c, source: args["source"]}
}

func newDate(args map[string]string, vars *VariablesTable, idCounter *int) Segment {
	c := decodeCommon(args, vars)
	c.id = nextID(idCounter)
	typ := dateLayout(lowerASCII(args["type"]))
	switch typ {
	case layoutMDY, layoutYMD, layoutYMDH, layoutYMDT, layoutOAGI:
	default:
		typ = layoutYMDH
	}
	start := args["start"]
	if start == "" {
		start = "1/1/2000"
	}
	return &Date{Common: c, typ: typ, startSpec: start}
}

// newVariable builds a Variable segment for "declare/read" mode, or, for
// "bulk load" mode (source= present), performs the load immediately
// against vars and reports loaded=true so the caller omits it from the
// tree. A source that cannot be loaded is logged as a warning and skipped.
func newVariable(args map[string]string, vars *VariablesTable, idCounter *int) (seg Segment, loaded bool, err error) {
	if src, ok := args["source"]; ok {
		if err := loadVariableSourceInto(vars, src); err != nil {
			gologger.Warning().Msgf("template: gen.variable source=%q not loaded: %v", src, err)
		}
		return nil, true, nil
	}

	name := args["name"]
	if name == "" {
		return nil, true, newParseError(0, "gen.variable requires name= or source=")
	}
	if _, ok := vars.Lookup(name); !ok {
		vars.Set(name, args["default"])
	}
	v := &Variable{
		id:         nextID(idCounter),
		name:       name,
		varName:    name,
		defaultVal: args["default"],
	}
	if inc, ok := args["increment"]; ok {
		n, err := strconv.ParseInt(inc, 10, 64)
		if err == nil {
			v.hasIncrement = true
			v.increment = n
		}
	}
	return v, false, nil
}

func newFile(args map[string]string, vars *VariablesTable, idCounter *int, includeDepth int) (Segment, error) {
	path := args["path"]
	if path == "" {
		return nil, newParseError(0, "gen.file requires path=")
	}
	if includeDepth+1 > maxIncludeDepth {
		return nil, newParseError(0, "file include depth exceeded %d levels at %q", maxIncludeDepth, path)
	}
	if !fileutil.FileExists(path) {
		return nil, newParseError(0, "gen.file path %q not found", path)
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, newParseError(0, "gen.file path %q: %v", path, err)
	}
	root, err := parseTemplate(string(bin), vars, idCounter, includeDepth+1)
	if err != nil {
		return nil, err
	}
	return &File{id: nextID(idCounter), name: args["name"], path: path, root: root}, nil
}

func newBlock(args map[string]string, vars *VariablesTable, idCounter *int) (*Block, error) {
	c := decodeCommon(args, vars)
	b := &Block{
		id:   nextID(idCounter),
		name: c.name,
		rule: parseContextRule(args["context"]),
		min:  c.min,
		max:  c.max,
	}
	// decodeCommon's min/max defaults (0, DefaultMax-1) are sized for
	// Value/Date's random-order draw; a Block with none of count=/min=/
	// max=/range= instead defaults to a single iteration.
	_, hasCount := args["count"]
	_, hasMin := args["min"]
	_, hasMax := args["max"]
	_, hasRange := args["range"]
	if !hasCount && !hasMin && !hasMax && !hasRange {
		b.min, b.max = 1, 1
	}
	if rv, ok := args["ratio"]; ok {
		if f, err := strconv.ParseFloat(rv, 64); err == nil && f > 0 && f < 1 {
			b.ratio = &f
		}
	}
	if wv, ok := args["while"]; ok {
		b.cond = parseCondition(wv)
	}
	return b, nil
}

// loadVariableSpec resolves a set_variables spec: "none", "{k=v,...}", or
// a properties file path.
func loadVariableSpec(spec string) (map[string]string, error) {
	if spec == "" || lowerASCII(spec) == "none" {
		return nil, nil
	}
	if strings.HasPrefix(spec, "{") {
		return parseInlineMap(spec), nil
	}
	bin, err := os.ReadFile(spec)
	if err != nil {
		return nil, err
	}
	return parsePropertiesFile(bin), nil
}

func loadVariableSourceInto(vars *VariablesTable, src string) error {
	kv, err := loadVariableSpec(src)
	if err != nil {
		return err
	}
	vars.SetAll(kv)
	return nil
}

func parseInlineMap(spec string) map[string]string {
	inner := strings.TrimSuffix(strings.TrimPrefix(spec, "{"), "}")
	out := map[string]string{}
	if inner == "" {
		return out
	}
	for _, pair := range strings.Split(inner, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

func parsePropertiesFile(bin []byte) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(string(bin), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
