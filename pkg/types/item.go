package types

// ItemStack 一组相同物品
type ItemStack struct {
	Item  string `yaml:"item" json:"item"`
	Count int    `yaml:"count" json:"count"`
}

// IsEmpty 检查物品堆是否为空
func (s ItemStack) IsEmpty() bool {
	return s.Item == "" || s.Count <= 0
}
