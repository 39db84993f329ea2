package herocanvas

// SceneKind identifies one of the five hero illustrations. The set is closed;
// scenes play in declaration order and wrap.
type SceneKind uint8

const (
	SceneVision SceneKind = iota
	SceneLeadership
	SceneCollaboration
	SceneExcellence
	SceneTransformation

	sceneCount = 5
)

// SceneCount is the number of scenes in the rotation.
const SceneCount = sceneCount

var sceneNames = [sceneCount]string{
	"vision",
	"leadership",
	"collaboration",
	"excellence",
	"transformation",
}

func (k SceneKind) String() string {
	if int(k) < len(sceneNames) {
		return sceneNames[k]
	}
	return "unknown"
}

// Next returns the scene that follows k, wrapping after the last one.
func (k SceneKind) Next() SceneKind {
	return (k + 1) % sceneCount
}

// Render draws the scene over a w x h surface at the given opacity. t is the
// global frame clock; every scene is a pure function of (w, h, t, alpha).
func (k SceneKind) Render(ctx Context, w, h, t, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	ctx.Save()
	ctx.SetGlobalAlpha(alpha)
	switch k {
	case SceneVision:
		renderVision(ctx, w, h, t)
	case SceneLeadership:
		renderLeadership(ctx, w, h, t)
	case SceneCollaboration:
		renderCollaboration(ctx, w, h, t)
	case SceneExcellence:
		renderExcellence(ctx, w, h, t)
	case SceneTransformation:
		renderTransformation(ctx, w, h, t)
	}
	ctx.Restore()
}

// sceneBackground fills the surface with a vertical gradient from top to
// bottom.
func sceneBackground(ctx Context, w, h float64, top, bottom Color) {
	g := NewLinearGradient(0, 0, 0, h).
		AddStop(0, top).
		AddStop(1, bottom)
	ctx.FillRect(0, 0, w, h, g)
}

// figureScale sizes silhouettes relative to the surface so small viewports do
// not end up with giant figures.
func figureScale(w, h float64) float64 {
	return min(w, h) / 600
}
