package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager 集中管理精灵图像的加载和缓存
//
// 精灵是可选的：data/sprites/<name>.png 不存在时返回错误，
// 调用方回退到占位颜色。加载失败的名称也会被缓存，避免每次生成都重复读取。
//
// 非线程安全，只在游戏主循环中使用。
type ResourceManager struct {
	fsys       fs.FS
	spriteDir  string
	imageCache map[string]*ebiten.Image
	missing    map[string]error
}

// NewResourceManager 创建资源管理器
// 参数:
//   - fsys: 资源文件系统（嵌入资源或 os.DirFS），可为 nil
//   - spriteDir: 精灵目录，如 "data/sprites"
func NewResourceManager(fsys fs.FS, spriteDir string) *ResourceManager {
	return &ResourceManager{
		fsys:       fsys,
		spriteDir:  spriteDir,
		imageCache: make(map[string]*ebiten.Image),
		missing:    make(map[string]error),
	}
}

// LoadImage 按精灵名称加载图像并缓存
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[name]; ok {
		return img, nil
	}
	if err, ok := rm.missing[name]; ok {
		return nil, err
	}

	img, err := rm.decode(name)
	if err != nil {
		rm.missing[name] = err
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[name] = ebitenImg
	return ebitenImg, nil
}

// decode 读取并解码 PNG
func (rm *ResourceManager) decode(name string) (image.Image, error) {
	if rm.fsys == nil {
		return nil, fmt.Errorf("no resource file system for sprite %s", name)
	}

	p := path.Join(rm.spriteDir, name+".png")
	data, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite %s: %w", p, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", p, err)
	}
	return img, nil
}

// GetImage 返回已缓存的图像，未加载时返回 nil
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}

// MissingCount 返回加载失败的精灵数量
func (rm *ResourceManager) MissingCount() int {
	return len(rm.missing)
}
