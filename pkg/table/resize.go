package table

import "context"

// PointerEvent 原生指针事件中参与列宽计算的字段。
// 直接对指针捕获协议(down/move/up)建模，不绑定任何渲染框架
type PointerEvent struct {
	PointerID int     `json:"pointerId"`
	ClientX   float64 `json:"clientX"`
}

// ResizeController 列宽拖拽控制器，同一时刻只允许一个活动拖拽。
// 拖拽过程中只更新内存中的宽度浮层，松开指针时一次性提交进偏好存储，
// 拖拽中写存储会造成抖动。宽度是唯一被修改的列属性
type ResizeController struct {
	store *PreferenceStore

	active     bool
	pointerID  int
	key        string
	startX     float64
	startWidth int

	overlay map[string]int
}

// NewResizeController 创建列宽拖拽控制器
func NewResizeController(store *PreferenceStore) *ResizeController {
	return &ResizeController{
		store:   store,
		overlay: make(map[string]int),
	}
}

// PointerDown 在列的拖拽手柄上按下指针，捕获该指针并记录起点。
// 已有活动拖拽时拒绝，返回false
func (r *ResizeController) PointerDown(ctx context.Context, key string, ev PointerEvent) bool {
	if r.active {
		return false
	}

	startWidth := r.effectiveWidth(ctx, key)
	if startWidth <= 0 {
		return false
	}

	r.active = true
	r.pointerID = ev.PointerID
	r.key = key
	r.startX = ev.ClientX
	r.startWidth = startWidth
	return true
}

// PointerMove 指针移动，更新内存浮层并返回候选宽度。
// 未捕获的指针或无活动拖拽时返回0
func (r *ResizeController) PointerMove(ev PointerEvent) int {
	if !r.active || ev.PointerID != r.pointerID {
		return 0
	}

	width := r.candidateWidth(ev.ClientX)
	r.overlay[r.key] = width
	return width
}

// PointerUp 松开指针，按同一公式计算最终宽度并提交一次，随后释放捕获
func (r *ResizeController) PointerUp(ctx context.Context, ev PointerEvent) int {
	if !r.active || ev.PointerID != r.pointerID {
		return 0
	}

	width := r.candidateWidth(ev.ClientX)
	r.store.SetWidth(ctx, r.key, width)

	delete(r.overlay, r.key)
	r.active = false
	r.key = ""
	return width
}

// Cancel 放弃当前拖拽，不提交任何宽度
func (r *ResizeController) Cancel() {
	if !r.active {
		return
	}
	delete(r.overlay, r.key)
	r.active = false
	r.key = ""
}

// Active 是否有活动拖拽
func (r *ResizeController) Active() bool {
	return r.active
}

// OverlayWidth 拖拽过程中某列的浮层宽度
func (r *ResizeController) OverlayWidth(key string) (int, bool) {
	w, ok := r.overlay[key]
	return w, ok
}

// candidateWidth 候选宽度 = max(下限, 起始宽度 + 指针位移)，
// 位移为负到再远也不会低于MinColWidth
func (r *ResizeController) candidateWidth(clientX float64) int {
	width := r.startWidth + int(clientX-r.startX)
	if width < MinColWidth {
		width = MinColWidth
	}
	return width
}

// effectiveWidth 当前有效宽度：持久化覆盖优先，其次预设宽度
func (r *ResizeController) effectiveWidth(ctx context.Context, key string) int {
	for _, col := range r.store.Effective(ctx) {
		if col.Key == key {
			if col.Width > 0 {
				return col.Width
			}
			return MinColWidth
		}
	}
	return 0
}
