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

// This file seeds the default bag's built-in components, records, and
// variables: a fixed list, installed once, that every document can refer
// to without declaring it.

// kernelArg is a shorthand for one kernel component argument declaration.
type kernelArg struct {
	name string
	kind Kind
}

// commonKernelArgs is the argument set every kernel container/leaf carries:
// width, height, color, align, padding-*, region, id, and so on.
func commonKernelArgs() []kernelArg {
	return []kernelArg{
		{"width", IntegerKind().AsOptional()},
		{"height", IntegerKind().AsOptional()},
		{"color", RecordKind("ftd#color").AsOptional()},
		{"background-color", RecordKind("ftd#color").AsOptional()},
		{"align", StringKind().AsOptional()},
		{"padding", IntegerKind().AsOptional()},
		{"padding-left", IntegerKind().AsOptional()},
		{"padding-right", IntegerKind().AsOptional()},
		{"padding-top", IntegerKind().AsOptional()},
		{"padding-bottom", IntegerKind().AsOptional()},
		{"region", StringKind().AsOptional()},
		{"id", StringKind().AsOptional()},
		{"open", BooleanKind().WithLiteralDefault("false")},
		{"append-at", StringKind().AsOptional()},
	}
}

func newKernel(name string, args ...kernelArg) *Component {
	c := NewComponent(name, "")
	c.Kernel = true
	for _, a := range args {
		c.AddArgument(a.name, a.kind)
	}
	for _, a := range commonKernelArgs() {
		if _, ok := c.Argument(a.name); !ok {
			c.AddArgument(a.name, a.kind)
		}
	}
	return c
}

// kernelComponents returns the fixed set of kernel components installed
// into the default bag.
func kernelComponents() []*Component {
	return []*Component{
		newKernel("ftd#row",
			kernelArg{"spacing", IntegerKind().AsOptional()},
			kernelArg{"wrap", BooleanKind().WithLiteralDefault("false")},
		),
		newKernel("ftd#column",
			kernelArg{"spacing", IntegerKind().AsOptional()},
		),
		newKernel("ftd#text",
			kernelArg{"text", CaptionOrBody()},
			kernelArg{"size", IntegerKind().AsOptional()},
			kernelArg{"weight", IntegerKind().AsOptional()},
		),
		newKernel("ftd#text-block",
			kernelArg{"text", Body()},
			kernelArg{"line-height", IntegerKind().AsOptional()},
		),
		newKernel("ftd#code",
			kernelArg{"text", Body()},
			kernelArg{"lang", StringKind().WithLiteralDefault("txt")},
		),
		newKernel("ftd#image",
			kernelArg{"src", RecordKind("ftd#image-src")},
			kernelArg{"alt", StringKind().AsOptional()},
		),
		newKernel("ftd#iframe",
			kernelArg{"src", StringKind().AsOptional()},
			kernelArg{"youtube", StringKind().AsOptional()},
		),
		newKernel("ftd#integer",
			kernelArg{"value", IntegerKind()},
			kernelArg{"format", StringKind().AsOptional()},
		),
		newKernel("ftd#decimal",
			kernelArg{"value", DecimalKind()},
			kernelArg{"format", StringKind().AsOptional()},
		),
		newKernel("ftd#boolean",
			kernelArg{"value", BooleanKind()},
		),
		newKernel("ftd#scene",
			kernelArg{"spacing", IntegerKind().AsOptional()},
		),
		newKernel("ftd#grid",
			kernelArg{"slots", StringKind()},
			kernelArg{"spacing", IntegerKind().AsOptional()},
		),
		newKernel("ftd#input",
			kernelArg{"placeholder", StringKind().AsOptional()},
			kernelArg{"value", StringKind().AsOptional()},
			kernelArg{"type", StringKind().WithLiteralDefault("text")},
		),
		newKernel("ftd#null"),
	}
}

// builtinRecords returns the fixed set of default records.
func builtinRecords() []*Record {
	imageSrc := NewRecord("ftd#image-src")
	imageSrc.AddField(Field{Name: "light", Kind: StringKind()})
	imageSrc.AddField(Field{Name: "dark", Kind: StringKind()})

	color := NewRecord("ftd#color")
	color.AddField(Field{Name: "light", Kind: StringKind()})
	color.AddField(Field{Name: "dark", Kind: StringKind()})

	fontSize := NewRecord("ftd#font-size")
	fontSize.AddField(Field{Name: "line-height", Kind: IntegerKind()})
	fontSize.AddField(Field{Name: "size", Kind: IntegerKind()})
	fontSize.AddField(Field{Name: "letter-spacing", Kind: IntegerKind().WithLiteralDefault("0")})

	typ := NewRecord("ftd#type")
	typ.AddField(Field{Name: "font", Kind: StringKind().AsOptional()})
	typ.AddField(Field{Name: "desktop", Kind: RecordKind("ftd#font-size")})
	typ.AddField(Field{Name: "mobile", Kind: RecordKind("ftd#font-size")})

	colors := NewRecord("ftd#colors")
	colors.AddField(Field{Name: "background", Kind: RecordKind("ftd#color")})
	colors.AddField(Field{Name: "text", Kind: RecordKind("ftd#color")})
	colors.AddField(Field{Name: "border", Kind: RecordKind("ftd#color")})

	return []*Record{imageSrc, color, fontSize, typ, colors}
}

// builtinVariable names a default variable, its kind,
// and its literal default text.
type builtinVariable struct {
	name string
	kind Kind
	lit  string
}

func builtinVariables() []builtinVariable {
	return []builtinVariable{
		{"ftd#dark-mode", BooleanKind(), "false"},
		{"ftd#system-dark-mode", BooleanKind(), "false"},
		{"ftd#follow-system-dark-mode", BooleanKind(), "true"},
		{"ftd#device", StringKind(), "desktop"},
		{"ftd#mobile-breakpoint", IntegerKind(), "768"},
		{"ftd#desktop-breakpoint", IntegerKind(), "1440"},
	}
}

// SeedBuiltins installs the default bag contents into b: kernel
// components, builtin records, and builtin variables, each under its fully
// qualified "ftd#..." name.
func SeedBuiltins(b *Bag) error {
	for _, c := range kernelComponents() {
		b.Set(c.FullName, ComponentThing(c))
	}
	for _, r := range builtinRecords() {
		b.Set(r.FullName, RecordThing(r))
	}
	for _, bv := range builtinVariables() {
		v, err := ParseLiteral(bv.kind, bv.lit, SourceDefault)
		if err != nil {
			return err
		}
		b.Set(bv.name, VariableThing(NewVariable(bv.name, Lit(v))))
	}
	return nil
}
