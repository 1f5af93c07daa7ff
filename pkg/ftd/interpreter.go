// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ftd

import (
	"strconv"
	"strings"
	"time"
)

// An Interpreter is the orchestrator: it drives import recursion, the
// reorder pass, and per-section classification/dispatch, threading a
// single Bag through the whole run.
type Interpreter struct {
	Bag     *Bag
	Library Library

	// PrimarySections/Aliases are only populated for the main document:
	// an imported document mutates the shared bag but doesn't contribute
	// its own sections or aliases to the top-level run.
	PrimarySections []*Section
	Aliases         map[string]string

	parsedLibs map[string]bool

	// LibraryTime/ProcessorTime accumulate time spent in Library.Get and
	// Library.Process calls.
	LibraryTime   time.Duration
	ProcessorTime time.Duration

	containers *ContainerTracker

	options Options
}

// NewInterpreter returns an Interpreter with a freshly seeded bag of
// builtins and lib as its Library collaborator.
func NewInterpreter(lib Library) (*Interpreter, error) {
	bag := NewBag()
	if err := SeedBuiltins(bag); err != nil {
		return nil, err
	}
	return &Interpreter{
		Bag:        bag,
		Library:    lib,
		parsedLibs: map[string]bool{},
		containers: NewContainerTracker(),
		options:    DefaultOptions(),
	}, nil
}

// Interpret is the top-level entry point: it drives the import recursion
// for the main document. Every error it returns is fatal to the run;
// before returning one, Interpret reports it through the configured
// ErrorReporter.
func (ip *Interpreter) Interpret(name, source string) ([]Instruction, error) {
	instrs, err := ip.interpret(name, source, true)
	if err != nil {
		ip.reporter().Report(err)
	}
	return instrs, err
}

// reporter returns ip.options.Reporter, defaulting to a no-op if it is nil.
func (ip *Interpreter) reporter() ErrorReporter {
	if ip.options.Reporter == nil {
		return noopReporter{}
	}
	return ip.options.Reporter
}

// metrics returns ip.options.Metrics, defaulting to a no-op.
func (ip *Interpreter) metrics() Metrics {
	if ip.options.Metrics == nil {
		return noopMetrics{}
	}
	return ip.options.Metrics
}

// interpret implements interpret_(name, source, is_main).
func (ip *Interpreter) interpret(name, source string, isMain bool) ([]Instruction, error) {
	sections, err := Parse(source, name)
	if err != nil {
		return nil, parseErrorf(name, 0, "%v", err)
	}

	doc := NewDocumentView(ip.Bag, name)

	// Step 2: process a leading prefix of import: sections.
	i := 0
	for i < len(sections) && sections[i].Name == "import" {
		if err := ip.processImport(sections[i], doc); err != nil {
			return nil, err
		}
		i++
	}
	rest := sections[i:]

	reordered, _ := Reorder(rest, ip.Bag)

	var instructions []Instruction
	scope := NewScope(name, ip.Bag)

	for idx, sec := range reordered {
		if sec.IsCommented {
			continue
		}

		// Step 4.a: a mid-document import.
		if sec.Name == "import" {
			if err := ip.processImport(sec, doc); err != nil {
				return nil, err
			}
			continue
		}

		// Step 4.c: container switch.
		if sec.Name == "container" {
			target, _ := sec.HeaderValue("name")
			if target == "" && sec.HasCaption {
				target = sec.Caption
			}
			if err := ip.containers.Switch(target, sec.LineNumber); err != nil {
				return nil, err
			}
			instructions = append(instructions, ChangeContainerInstruction(target))
			continue
		}

		instr, err := ip.classifyAndDispatch(sec, doc, scope, idx)
		if err != nil {
			return nil, err
		}
		ip.metrics().IncSectionsProcessed()
		if instr != nil {
			instructions = append(instructions, *instr)
		}
	}

	if isMain {
		ip.PrimarySections = reordered
		ip.Aliases = map[string]string{}
		for alias, target := range doc.aliases {
			ip.Aliases[alias] = target
		}
	}
	return instructions, nil
}

// processImport computes (target, alias), records the alias, fetches via
// the Library, and recurses at most once per target.
func (ip *Interpreter) processImport(sec *Section, doc *DocumentView) error {
	target, alias, ok := parseImportHeader(sec)
	if !ok {
		return parseErrorf(doc.Module(), sec.LineNumber, "malformed import section")
	}
	doc.AddAlias(alias, target)

	if ip.parsedLibs[target] {
		return nil
	}

	start := time.Now()
	text, err := ip.Library.Get(target, doc)
	elapsed := time.Since(start)
	ip.LibraryTime += elapsed
	ip.metrics().ObserveLibraryFetch(elapsed, err == nil)
	if err != nil {
		return libraryError(doc.Module(), sec.LineNumber, err)
	}

	if _, err := ip.interpret(target, text, false); err != nil {
		return err
	}
	ip.parsedLibs[target] = true
	ip.metrics().IncImportsResolved()
	return nil
}

// parseImportHeader extracts (target, alias) from an `import:` section,
// either "-- import: path/to/module" or "-- import: path/to/module as m".
func parseImportHeader(sec *Section) (target, alias string, ok bool) {
	text := sec.Caption
	if text == "" {
		text, _ = sec.HeaderValue("module")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", false
	}
	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		target = fields[0]
		alias = lastPathComponent(target)
	case 3:
		if fields[1] != "as" {
			return "", "", false
		}
		target = fields[0]
		alias = fields[2]
	default:
		return "", "", false
	}
	return target, alias, true
}

func lastPathComponent(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// classifyAndDispatch classifies a non-import, non-container section and
// dispatches it to the matching declare/update/instantiate handler.
func (ip *Interpreter) classifyAndDispatch(sec *Section, doc *DocumentView, scope *Scope, index int) (*Instruction, error) {
	switch {
	case strings.HasPrefix(sec.Name, "record "):
		return nil, ip.declareRecord(sec, doc)
	case strings.HasPrefix(sec.Name, "or-type "):
		return nil, ip.declareOrType(sec, doc)
	}

	kind, ident, hasKind := sec.KindAndIdent()
	if hasKind {
		if _, ok := ip.Bag.Get(doc.qualify(kind)); ok {
			return nil, ip.declareComponent(sec, kind, ident, doc)
		}
		if isPrimitiveKindToken(kind) {
			return nil, ip.declareVariable(sec, kind, ident, doc)
		}
	}

	fqn := doc.qualify(sec.Name)
	thing, ok := ip.Bag.Get(fqn)
	if !ok {
		return nil, nameErrorf(doc.Module(), sec.LineNumber, "undeclared name %q", sec.Name)
	}

	switch thing.Kind {
	case ThingVariable:
		return nil, ip.updateVariable(sec, thing.Variable, doc, scope)
	case ThingComponent:
		return ip.instantiateComponent(sec, thing.Component, doc, scope, index)
	case ThingRecord:
		return nil, ip.addRecordInstance(sec, thing.Record, doc, scope)
	case ThingOrType, ThingOrTypeWithVariant:
		return nil, nameErrorf(doc.Module(), sec.LineNumber, "%q names an or-type and cannot be used as a variable", sec.Name)
	default:
		return nil, nameErrorf(doc.Module(), sec.LineNumber, "undeclared name %q", sec.Name)
	}
}

func isPrimitiveKindToken(token string) bool {
	switch strings.Fields(token)[0] {
	case "string", "caption", "body", "integer", "decimal", "boolean", "list", "optional":
		return true
	}
	return false
}

// declareRecord handles a "record <name>" section: every sub-section is one
// field, "<Kind> <fieldname>" with an optional caption default.
func (ip *Interpreter) declareRecord(sec *Section, doc *DocumentView) error {
	ident := strings.TrimPrefix(sec.Name, "record ")
	fqn := doc.qualify(ident)
	if _, exists := ip.Bag.Get(fqn); exists {
		return nameErrorf(doc.Module(), sec.LineNumber, "%q already declared", fqn)
	}

	r := NewRecord(fqn)
	for _, field := range sec.SubSections {
		if field.IsCommented {
			continue
		}
		kind, fname, ok := field.KindAndIdent()
		if !ok {
			return parseErrorf(doc.Module(), field.LineNumber, "malformed record field %q", field.Name)
		}
		if _, dup := r.Field(fname); dup {
			return nameErrorf(doc.Module(), field.LineNumber, "record %s declares field %q twice", fqn, fname)
		}
		k := kindFromToken(kind)
		f := Field{Name: fname, Kind: k}
		if field.HasCaption {
			lit, err := ParseLiteral(k, field.Caption, SourceCaption)
			if err != nil {
				return err
			}
			f.Default = Lit(lit)
			f.HasDefault = true
		}
		r.AddField(f)
	}
	ip.Bag.Set(fqn, RecordThing(r))
	return nil
}

// declareOrType handles an "or-type <name>" section: every sub-section
// names one variant, optionally with its own field schema given by further
// nested sub-sections.
func (ip *Interpreter) declareOrType(sec *Section, doc *DocumentView) error {
	ident := strings.TrimPrefix(sec.Name, "or-type ")
	fqn := doc.qualify(ident)
	if _, exists := ip.Bag.Get(fqn); exists {
		return nameErrorf(doc.Module(), sec.LineNumber, "%q already declared", fqn)
	}

	o := NewOrType(fqn)
	for _, variant := range sec.SubSections {
		if variant.IsCommented {
			continue
		}
		schema := NewRecord(fqn + "." + variant.Name)
		for _, field := range variant.SubSections {
			if field.IsCommented {
				continue
			}
			kind, fname, ok := field.KindAndIdent()
			if !ok {
				continue
			}
			schema.AddField(Field{Name: fname, Kind: kindFromToken(kind)})
		}
		o.AddVariant(variant.Name, schema)
		ip.Bag.Set(fqn+"."+variant.Name, OrTypeVariantThing(&OrTypeWithVariant{Parent: fqn, Variant: variant.Name}))
	}
	ip.Bag.Set(fqn, OrTypeThing(o))
	return nil
}

// declareComponent builds a new Component derived from an existing one
// named by kind.
func (ip *Interpreter) declareComponent(sec *Section, kind, ident string, doc *DocumentView) error {
	fqn := doc.qualify(ident)
	if _, exists := ip.Bag.Get(fqn); exists {
		return nameErrorf(doc.Module(), sec.LineNumber, "%q already declared", fqn)
	}
	root, _ := ip.Bag.Get(doc.qualify(kind))

	c := NewComponent(fqn, root.Component.FullName)
	c.Arguments = root.Component.CloneArguments()
	c.argIndexFromArguments()
	c.Properties = map[string]*Property{}

	// ownScope resolves "$other" default references against c's own
	// argument schema first — a "$other" default resolves to other@<path>
	// when other is another argument of the same component — falling back
	// to a global lookup when the name isn't one of c's arguments.
	ownScope := NewScope(doc.Module(), ip.Bag)
	for _, a := range c.Arguments {
		ownScope.args[a.Name] = a.Kind
	}

	for _, h := range sec.Header {
		if _, ok := c.Argument(h.Key); !ok {
			continue
		}
		v := strings.TrimSpace(h.Value)
		var pv PropertyValue
		if strings.HasPrefix(v, "$") {
			var err error
			pv, err = ownScope.Lookup(strings.TrimPrefix(v, "$"))
			if err != nil {
				return err
			}
		} else {
			k, _ := c.Argument(h.Key)
			lit, err := ParseLiteral(k, v, SourceHeader)
			if err != nil {
				return err
			}
			pv = Lit(lit)
		}
		c.Properties[h.Key] = &Property{Default: pv, HasDefault: true}
	}

	for i, child := range sec.SubSections {
		if child.IsCommented {
			continue
		}
		childComp, ok := ip.Bag.Get(doc.qualify(child.Name))
		if !ok || childComp.Kind != ThingComponent {
			continue
		}
		scope := NewScope(doc.Module(), ip.Bag)
		cc, callScope, err := BuildChildComponent(childComp.Component, child, scope, i, ip.Bag)
		if err != nil {
			return err
		}
		_ = callScope
		c.Instructions = append(c.Instructions, ChildInstruction(cc))
	}

	ip.Bag.Set(fqn, ComponentThing(c))
	return nil
}

// declareVariable handles a primitive-kind variable declaration section.
func (ip *Interpreter) declareVariable(sec *Section, kindToken, ident string, doc *DocumentView) error {
	fqn := doc.qualify(ident)
	if _, exists := ip.Bag.Get(fqn); exists {
		return nameErrorf(doc.Module(), sec.LineNumber, "%q already declared", fqn)
	}
	kind := kindFromToken(kindToken)

	if proc, ok := sec.HeaderValue("$processor$"); ok {
		start := time.Now()
		val, err := ip.Library.Process(proc, sec, doc)
		elapsed := time.Since(start)
		ip.ProcessorTime += elapsed
		ip.metrics().ObserveProcessorCall(elapsed, err == nil)
		if err != nil {
			return err
		}
		ip.Bag.Set(fqn, VariableThing(NewVariable(fqn, Lit(val))))
		return nil
	}

	if kind.Variant == KList {
		ip.Bag.Set(fqn, VariableThing(NewVariable(fqn, Lit(ListValue(*kind.Of, nil)))))
		return nil
	}

	text := sec.Caption
	source := SourceCaption
	if text == "" && sec.HasBody {
		text, source = sec.BodyVal.Text, SourceBody
	}
	if text == "" {
		if v, ok := sec.HeaderValue("value"); ok {
			text, source = v, SourceHeader
		}
	}
	val, err := ParseLiteral(kind, text, source)
	if err != nil {
		return err
	}
	ip.Bag.Set(fqn, VariableThing(NewVariable(fqn, Lit(val))))
	return nil
}

// updateVariable handles a section that re-assigns an existing variable,
// either unconditionally, conditionally via if:, or via $processor$.
func (ip *Interpreter) updateVariable(sec *Section, v *Variable, doc *DocumentView, scope *Scope) error {
	hasIf := sec.HasHeader("if")
	hasProcessor := sec.HasHeader("$processor$")
	if hasIf && hasProcessor {
		return conditionErrorf(doc.Module(), sec.LineNumber, "if: and $processor$ cannot both be set on %q", sec.Name)
	}

	switch {
	case hasIf:
		ifVal, _ := sec.HeaderValue("if")
		cond, err := ParseBoolean(ifVal, scope)
		if err != nil {
			return conditionErrorf(doc.Module(), sec.LineNumber, "bad if: condition: %v", err)
		}
		text := sec.Caption
		if text == "" && sec.HasBody {
			text = sec.BodyVal.Text
		}
		val, err := ParseLiteral(v.Value.Kind, text, SourceCaption)
		if err != nil {
			return err
		}
		v.AddCondition(cond, Lit(val))
		return nil
	case hasProcessor:
		proc, _ := sec.HeaderValue("$processor$")
		start := time.Now()
		val, err := ip.Library.Process(proc, sec, doc)
		elapsed := time.Since(start)
		ip.ProcessorTime += elapsed
		ip.metrics().ObserveProcessorCall(elapsed, err == nil)
		if err != nil {
			return err
		}
		v.Value = Lit(val)
		return nil
	default:
		text := sec.Caption
		if text == "" && sec.HasBody {
			text = sec.BodyVal.Text
		}
		val, err := ParseLiteral(v.Value.Kind, text, SourceCaption)
		if err != nil {
			return err
		}
		v.Value = Lit(val)
		return nil
	}
}

// applyProcessor runs sec's $processor$, if any, and splices an Object
// result's entries into sec's caption ($caption$), body ($body$), and
// remaining headers, returning the spliced Section a component call builds
// from. A processor whose result is not an Object is left alone: it is not
// component-instance sugar, just an ordinary (and likely misconfigured) run.
func (ip *Interpreter) applyProcessor(sec *Section, doc *DocumentView) (*Section, error) {
	proc, ok := sec.HeaderValue("$processor$")
	if !ok {
		return sec, nil
	}

	start := time.Now()
	val, err := ip.Library.Process(proc, sec, doc)
	elapsed := time.Since(start)
	ip.ProcessorTime += elapsed
	ip.metrics().ObserveProcessorCall(elapsed, err == nil)
	if err != nil {
		return nil, err
	}
	if val.Kind.Variant != KObject {
		return sec, nil
	}

	spliced := *sec
	spliced.Header = append([]Header(nil), sec.Header...)
	for name, pv := range val.Entries {
		text, err := processorEntryText(pv, doc)
		if err != nil {
			return nil, err
		}
		switch name {
		case "$caption$":
			spliced.HasCaption = true
			spliced.Caption = text
		case "$body$":
			spliced.HasBody = true
			spliced.BodyVal = Body{Line: sec.LineNumber, Text: text}
		default:
			spliced.Header = append(spliced.Header, Header{Line: sec.LineNumber, Key: name, Value: text})
		}
	}
	return &spliced, nil
}

// processorEntryText renders pv, resolved against res, to the plain text
// form a section caption/body/header carries.
func processorEntryText(pv PropertyValue, res Resolver) (string, error) {
	v, err := pv.Resolve(res)
	if err != nil {
		return "", err
	}
	switch v.Kind.Variant {
	case KString:
		return v.Text, nil
	case KInteger:
		return strconv.FormatInt(v.Int, 10), nil
	case KDecimal:
		return strconv.FormatFloat(v.Dec, 'g', -1, 64), nil
	case KBoolean:
		return strconv.FormatBool(v.Bool), nil
	default:
		return "", kindErrorf("", 0, "processor entry has non-scalar kind %s", v.Kind)
	}
}

// instantiateComponent builds the ChildComponent(s) a component-call
// section produces, running any $processor$ first, then expanding any
// nested sub-sections and $loop$ headers.
func (ip *Interpreter) instantiateComponent(sec *Section, comp *Component, doc *DocumentView, scope *Scope, index int) (*Instruction, error) {
	sec, err := ip.applyProcessor(sec, doc)
	if err != nil {
		return nil, err
	}

	if loopText, ok := sec.HeaderValue("$loop$"); ok {
		instr, err := ExpandLoop(comp, sec, loopText, scope, index, ip.Bag)
		if err != nil {
			return nil, err
		}
		for _, cc := range instr.RecursiveChildren {
			ip.containers.Observe(cc)
		}
		return &instr, nil
	}

	cc, callScope, err := BuildChildComponent(comp, sec, scope, index, ip.Bag)
	if err != nil {
		return nil, err
	}

	var children []*ChildComponent
	for i, sub := range sec.SubSections {
		if sub.IsCommented {
			continue
		}
		childThing, ok := ip.Bag.Get(doc.qualify(sub.Name))
		if !ok || childThing.Kind != ThingComponent {
			continue
		}
		if loopText, ok := sub.HeaderValue("$loop$"); ok {
			loopInstr, err := ExpandLoop(childThing.Component, sub, loopText, callScope, i, ip.Bag)
			if err != nil {
				return nil, err
			}
			children = append(children, loopInstr.RecursiveChildren...)
			continue
		}
		subCC, _, err := BuildChildComponent(childThing.Component, sub, callScope, i, ip.Bag)
		if err != nil {
			return nil, err
		}
		children = append(children, subCC)
	}
	cc.Children = children

	ip.containers.ObserveTree(cc)
	instr := ComponentInstruction(cc, children)
	return &instr, nil
}

// addRecordInstance handles a section naming a record, adding one
// documentation-style instance row.
func (ip *Interpreter) addRecordInstance(sec *Section, r *Record, doc *DocumentView, scope *Scope) error {
	given := map[string]PropertyValue{}
	for _, h := range sec.Header {
		f, ok := r.Field(h.Key)
		if !ok {
			continue
		}
		pv, err := parseHeaderValue(f.Kind, h.Value, scope)
		if err != nil {
			return err
		}
		given[h.Key] = pv
	}
	val, err := r.Instantiate(given, ip.Bag)
	if err != nil {
		return err
	}
	r.AddInstance(&val)
	return nil
}
