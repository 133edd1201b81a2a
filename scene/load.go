package scene

import (
	"fmt"
	"sort"

	"github.com/bloeys/gglm/gglm"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Scene files are HCL. Vector attributes are plain number lists, e.g.
// position = [0, 5, 15], and may reference values defined in a locals
// block as local.<name>.

type sceneFileHCL struct {
	Locals    []*localsBlockHCL   `hcl:"locals,block"`
	Textures  []*textureBlockHCL  `hcl:"texture,block"`
	Materials []*materialBlockHCL `hcl:"material,block"`
	Lighting  *lightingBlockHCL   `hcl:"lighting,block"`
	Objects   []*objectBlockHCL   `hcl:"object,block"`
}

type localsBlockHCL struct {
	Body hcl.Body `hcl:",remain"`
}

type textureBlockHCL struct {
	Tag  string `hcl:"tag,label"`
	Path string `hcl:"path"`
}

type materialBlockHCL struct {
	Tag       string         `hcl:"tag,label"`
	Diffuse   hcl.Expression `hcl:"diffuse"`
	Specular  hcl.Expression `hcl:"specular"`
	Shininess float64        `hcl:"shininess"`
}

type lightingBlockHCL struct {
	ViewPosition hcl.Expression   `hcl:"view_position"`
	DirLight     *dirLightHCL     `hcl:"dir_light,block"`
	PointLights  []*pointLightHCL `hcl:"point_light,block"`
}

type dirLightHCL struct {
	Direction hcl.Expression `hcl:"direction"`
	Diffuse   hcl.Expression `hcl:"diffuse"`
	Specular  hcl.Expression `hcl:"specular"`
	Active    bool           `hcl:"active,optional"`
}

type pointLightHCL struct {
	Position  hcl.Expression `hcl:"position"`
	Ambient   hcl.Expression `hcl:"ambient"`
	Diffuse   hcl.Expression `hcl:"diffuse"`
	Specular  hcl.Expression `hcl:"specular"`
	Constant  float64        `hcl:"constant"`
	Linear    float64        `hcl:"linear"`
	Quadratic float64        `hcl:"quadratic"`
	Active    bool           `hcl:"active,optional"`
}

type objectBlockHCL struct {
	Name     string         `hcl:"name,label"`
	Shape    string         `hcl:"shape"`
	Scale    hcl.Expression `hcl:"scale,optional"`
	Rotation hcl.Expression `hcl:"rotation,optional"`
	Position hcl.Expression `hcl:"position,optional"`
	Material string         `hcl:"material,optional"`
	Texture  string         `hcl:"texture,optional"`
	Color    hcl.Expression `hcl:"color,optional"`
	UVScale  hcl.Expression `hcl:"uv_scale,optional"`
	Unlit    bool           `hcl:"unlit,optional"`
}

// LoadDefinition parses the scene file at path into a Definition.
func LoadDefinition(path string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, diags)
	}

	// Locals are read first so block attributes can reference them.
	var localsOnly struct {
		Locals []*localsBlockHCL `hcl:"locals,block"`
		Rest   hcl.Body          `hcl:",remain"`
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &localsOnly); diags.HasErrors() {
		return nil, fmt.Errorf("decoding scene file %s: %w", path, diags)
	}

	evalCtx, err := buildEvalContext(localsOnly.Locals)
	if err != nil {
		return nil, fmt.Errorf("evaluating locals in %s: %w", path, err)
	}

	var parsed sceneFileHCL
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decoding scene file %s: %w", path, diags)
	}

	def, err := buildDefinition(&parsed, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}

	return def, nil
}

func buildEvalContext(locals []*localsBlockHCL) (*hcl.EvalContext, error) {
	vals := map[string]cty.Value{}
	ctx := &hcl.EvalContext{Variables: map[string]cty.Value{}}

	for _, block := range locals {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}

		// JustAttributes hands back a map; evaluate in source order so a
		// local can reference the ones declared above it.
		ordered := make([]*hcl.Attribute, 0, len(attrs))
		for _, attr := range attrs {
			ordered = append(ordered, attr)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
		})

		for _, attr := range ordered {
			v, diags := attr.Expr.Value(ctx)
			if diags.HasErrors() {
				return nil, diags
			}
			vals[attr.Name] = v
			ctx.Variables["local"] = cty.ObjectVal(vals)
		}
	}

	return ctx, nil
}

func buildDefinition(parsed *sceneFileHCL, ctx *hcl.EvalContext) (*Definition, error) {
	def := &Definition{}

	for _, t := range parsed.Textures {
		def.Textures = append(def.Textures, TextureRef{Path: t.Path, Tag: t.Tag})
	}

	for _, m := range parsed.Materials {
		diffuse, err := decodeVec3(m.Diffuse, ctx, "diffuse")
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", m.Tag, err)
		}
		specular, err := decodeVec3(m.Specular, ctx, "specular")
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", m.Tag, err)
		}

		def.Materials = append(def.Materials, ObjectMaterial{
			Tag:           m.Tag,
			DiffuseColor:  diffuse,
			SpecularColor: specular,
			Shininess:     float32(m.Shininess),
		})
	}

	if parsed.Lighting != nil {
		lighting, err := buildLighting(parsed.Lighting, ctx)
		if err != nil {
			return nil, err
		}
		def.Lighting = *lighting
	}

	for _, o := range parsed.Objects {
		obj, err := buildObject(o, ctx)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", o.Name, err)
		}
		def.Objects = append(def.Objects, *obj)
	}

	return def, nil
}

func buildLighting(l *lightingBlockHCL, ctx *hcl.EvalContext) (*Lighting, error) {
	out := &Lighting{}

	viewPos, err := decodeVec3(l.ViewPosition, ctx, "view_position")
	if err != nil {
		return nil, fmt.Errorf("lighting: %w", err)
	}
	out.ViewPosition = viewPos

	if l.DirLight != nil {
		d := l.DirLight
		dir, err := decodeVec3(d.Direction, ctx, "direction")
		if err != nil {
			return nil, fmt.Errorf("dir_light: %w", err)
		}
		diffuse, err := decodeVec3(d.Diffuse, ctx, "diffuse")
		if err != nil {
			return nil, fmt.Errorf("dir_light: %w", err)
		}
		specular, err := decodeVec3(d.Specular, ctx, "specular")
		if err != nil {
			return nil, fmt.Errorf("dir_light: %w", err)
		}

		out.Directional = DirLight{
			Direction: dir,
			Diffuse:   diffuse,
			Specular:  specular,
			Active:    d.Active,
		}
	}

	if len(l.PointLights) > MaxPointLights {
		return nil, fmt.Errorf("lighting: %d point lights defined but the shader supports %d", len(l.PointLights), MaxPointLights)
	}

	for i, p := range l.PointLights {
		pos, err := decodeVec3(p.Position, ctx, "position")
		if err != nil {
			return nil, fmt.Errorf("point_light %d: %w", i, err)
		}
		ambient, err := decodeVec3(p.Ambient, ctx, "ambient")
		if err != nil {
			return nil, fmt.Errorf("point_light %d: %w", i, err)
		}
		diffuse, err := decodeVec3(p.Diffuse, ctx, "diffuse")
		if err != nil {
			return nil, fmt.Errorf("point_light %d: %w", i, err)
		}
		specular, err := decodeVec3(p.Specular, ctx, "specular")
		if err != nil {
			return nil, fmt.Errorf("point_light %d: %w", i, err)
		}

		out.PointLights[i] = PointLight{
			Position:  pos,
			Ambient:   ambient,
			Diffuse:   diffuse,
			Specular:  specular,
			Constant:  float32(p.Constant),
			Linear:    float32(p.Linear),
			Quadratic: float32(p.Quadratic),
			Active:    p.Active,
		}
	}

	return out, nil
}

func buildObject(o *objectBlockHCL, ctx *hcl.EvalContext) (*Object, error) {
	shape, err := ShapeKindFromString(o.Shape)
	if err != nil {
		return nil, err
	}

	scale, err := decodeVec3Default(o.Scale, ctx, "scale", gglm.NewVec3(1, 1, 1))
	if err != nil {
		return nil, err
	}
	rotation, err := decodeVec3Default(o.Rotation, ctx, "rotation", gglm.NewVec3(0, 0, 0))
	if err != nil {
		return nil, err
	}
	position, err := decodeVec3Default(o.Position, ctx, "position", gglm.NewVec3(0, 0, 0))
	if err != nil {
		return nil, err
	}
	color, err := decodeVec4Default(o.Color, ctx, "color", gglm.NewVec4(1, 1, 1, 1))
	if err != nil {
		return nil, err
	}
	uvScale, err := decodeVec2Default(o.UVScale, ctx, "uv_scale", gglm.NewVec2(1, 1))
	if err != nil {
		return nil, err
	}

	return &Object{
		Name:        o.Name,
		Shape:       shape,
		Scale:       scale,
		Rotation:    rotation,
		Position:    position,
		MaterialTag: o.Material,
		TextureTag:  o.Texture,
		Color:       color,
		UVScale:     uvScale,
		Unlit:       o.Unlit,
	}, nil
}

func decodeFloats(expr hcl.Expression, ctx *hcl.EvalContext, name string, want int) ([]float32, error) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", name, diags)
	}

	val, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("%s must be a list of numbers: %w", name, err)
	}

	var out []float32
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if len(out) != want {
		return nil, fmt.Errorf("%s must have %d components, got %d", name, want, len(out))
	}
	return out, nil
}

func decodeVec2(expr hcl.Expression, ctx *hcl.EvalContext, name string) (gglm.Vec2, error) {
	f, err := decodeFloats(expr, ctx, name, 2)
	if err != nil {
		return gglm.Vec2{}, err
	}
	return gglm.NewVec2(f[0], f[1]), nil
}

func decodeVec3(expr hcl.Expression, ctx *hcl.EvalContext, name string) (gglm.Vec3, error) {
	f, err := decodeFloats(expr, ctx, name, 3)
	if err != nil {
		return gglm.Vec3{}, err
	}
	return gglm.NewVec3(f[0], f[1], f[2]), nil
}

func decodeVec4(expr hcl.Expression, ctx *hcl.EvalContext, name string) (gglm.Vec4, error) {
	f, err := decodeFloats(expr, ctx, name, 4)
	if err != nil {
		return gglm.Vec4{}, err
	}
	return gglm.NewVec4(f[0], f[1], f[2], f[3]), nil
}

func decodeVec2Default(expr hcl.Expression, ctx *hcl.EvalContext, name string, def gglm.Vec2) (gglm.Vec2, error) {
	if exprIsAbsent(expr) {
		return def, nil
	}
	return decodeVec2(expr, ctx, name)
}

func decodeVec3Default(expr hcl.Expression, ctx *hcl.EvalContext, name string, def gglm.Vec3) (gglm.Vec3, error) {
	if exprIsAbsent(expr) {
		return def, nil
	}
	return decodeVec3(expr, ctx, name)
}

func decodeVec4Default(expr hcl.Expression, ctx *hcl.EvalContext, name string, def gglm.Vec4) (gglm.Vec4, error) {
	if exprIsAbsent(expr) {
		return def, nil
	}
	return decodeVec4(expr, ctx, name)
}

// gohcl leaves optional expression fields nil when the attribute is
// missing from the block.
func exprIsAbsent(expr hcl.Expression) bool {
	return expr == nil
}
