// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// TileVariant 定义地面瓦片的外观变体
// 由相邻格子是否为空决定（自动拼接）
type TileVariant int

const (
	// TileGround 普通地面（四周都有瓦片）
	TileGround TileVariant = iota

	// 边缘（只有一个方向为空）
	TileRight
	TileTop
	TileLeft
	TileBottom

	// 角（两个相邻方向为空），左右检查与上下检查共用
	TileTopRight
	TileTopLeft
	TileBottomRight
	TileBottomLeft

	// 孤立（某方向及其两个垂直方向都为空）
	TileRightAlone
	TileTopAlone
	TileLeftAlone
	TileBottomAlone
)

// TileVariantCount 是变体总数（包括普通地面）
const TileVariantCount = int(TileBottomAlone) + 1

// String 返回瓦片变体的字符串表示
func (v TileVariant) String() string {
	switch v {
	case TileGround:
		return "Ground"
	case TileRight:
		return "Right"
	case TileTop:
		return "Top"
	case TileLeft:
		return "Left"
	case TileBottom:
		return "Bottom"
	case TileTopRight:
		return "TopRight"
	case TileTopLeft:
		return "TopLeft"
	case TileBottomRight:
		return "BottomRight"
	case TileBottomLeft:
		return "BottomLeft"
	case TileRightAlone:
		return "RightAlone"
	case TileTopAlone:
		return "TopAlone"
	case TileLeftAlone:
		return "LeftAlone"
	case TileBottomAlone:
		return "BottomAlone"
	default:
		return "Unknown"
	}
}
