package analyzer

import "strings"

// Categorizer maps an event name to a coarse functional category.
type Categorizer func(name string) string

// Category names produced by DefaultCategorizer.
const (
	CategoryScript      = "script"
	CategoryStyle       = "style"
	CategoryLayout      = "layout"
	CategoryPaint       = "paint"
	CategoryCompositing = "compositing"
	CategoryLoading     = "loading"
	CategoryGPU         = "gpu"
	CategoryInput       = "input"
	CategoryScheduling  = "scheduling"
	CategoryOther       = "other"
)

// nameCategories maps well-known renderer event names to categories.
// The table is static domain knowledge about Chrome's instrumentation,
// loaded once at init and never mutated.
var nameCategories = map[string]string{
	"EvaluateScript":                  CategoryScript,
	"FunctionCall":                    CategoryScript,
	"EventDispatch":                   CategoryScript,
	"TimerFire":                       CategoryScript,
	"FireAnimationFrame":              CategoryScript,
	"MajorGC":                         CategoryScript,
	"MinorGC":                         CategoryScript,
	"GCEvent":                         CategoryScript,
	"ParseHTML":                       CategoryLoading,
	"ParseAuthorStyleSheet":           CategoryLoading,
	"ResourceSendRequest":             CategoryLoading,
	"ResourceReceivedData":            CategoryLoading,
	"ResourceFinish":                  CategoryLoading,
	"CommitLoad":                      CategoryLoading,
	"ScheduleStyleRecalculation":      CategoryStyle,
	"RecalculateStyles":               CategoryStyle,
	"UpdateLayoutTree":                CategoryStyle,
	"InvalidateLayout":                CategoryLayout,
	"Layout":                          CategoryLayout,
	"HitTest":                         CategoryLayout,
	"PrePaint":                        CategoryPaint,
	"Paint":                           CategoryPaint,
	"PaintImage":                      CategoryPaint,
	"UpdateLayer":                     CategoryPaint,
	"UpdateLayerTree":                 CategoryCompositing,
	"Commit":                          CategoryCompositing,
	"CompositeLayers":                 CategoryCompositing,
	"RasterTask":                      CategoryCompositing,
	"ImageDecodeTask":                 CategoryCompositing,
	"GPUTask":                         CategoryGPU,
	"HandleInputEvent":                CategoryInput,
	"MessageLoop::RunTask":            CategoryScheduling,
	"ThreadControllerImpl::RunTask":   CategoryScheduling,
	"SequenceManager::RunTask":        CategoryScheduling,
}

// prefixCategories catches instrumentation families the exact-name
// table cannot enumerate.
var prefixCategories = []struct {
	prefix   string
	category string
}{
	{"v8.", CategoryScript},
	{"V8.", CategoryScript},
	{"WebViewImpl::", CategoryInput},
	{"LocalFrameView::", CategoryLayout},
	{"Document::", CategoryStyle},
	{"ScheduledAction::", CategoryScript},
}

// DefaultCategorizer classifies renderer main thread event names into
// the categories above. Unrecognized names map to "other".
func DefaultCategorizer(name string) string {
	if category, ok := nameCategories[name]; ok {
		return category
	}
	for _, pc := range prefixCategories {
		if strings.HasPrefix(name, pc.prefix) {
			return pc.category
		}
	}
	return CategoryOther
}
