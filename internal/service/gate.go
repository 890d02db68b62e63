package service

// RenderMode 单张卡片的渲染方式
type RenderMode string

const (
	RenderCard   RenderMode = "card"
	RenderLocked RenderMode = "locked"
)

// GateModes 前 quota 张始终可见；未登录时其余为锁定卡片。只决定渲染方式，不改变顺序和数量
func GateModes(n, quota int, authenticated bool) []RenderMode {
	if n <= 0 {
		return []RenderMode{}
	}
	modes := make([]RenderMode, n)
	for i := range modes {
		if authenticated || i < quota {
			modes[i] = RenderCard
		} else {
			modes[i] = RenderLocked
		}
	}
	return modes
}
