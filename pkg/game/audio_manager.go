package game

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效采样率
const SampleRate = 48000

// 音效ID
const (
	SoundTileCrumble = "tile_crumble" // 边缘瓦片消失
	SoundGather      = "gather"       // 采集物体
	SoundPickup      = "pickup"       // 拾取掉落物
	SoundFall        = "fall"         // 玩家坠落
)

// soundSpec 合成音效的参数
type soundSpec struct {
	duration  float64 // 秒
	startFreq float64 // 起始频率（Hz），0 表示噪声
	endFreq   float64 // 结束频率（Hz）
	noise     float64 // 噪声混合比例 [0, 1]
	gain      float64
}

// 没有音频资源文件，所有音效在启动时合成
var soundSpecs = map[string]soundSpec{
	SoundTileCrumble: {duration: 0.12, startFreq: 180, endFreq: 60, noise: 0.8, gain: 0.35},
	SoundGather:      {duration: 0.08, startFreq: 220, endFreq: 140, noise: 0.3, gain: 0.5},
	SoundPickup:      {duration: 0.10, startFreq: 660, endFreq: 990, noise: 0, gain: 0.3},
	SoundFall:        {duration: 0.60, startFreq: 520, endFreq: 80, noise: 0.1, gain: 0.4},
}

// AudioManager 音效管理器
//
// 统一管理游戏音效的播放和音量。context 为 nil 时处于静音模式，
// 所有播放调用直接返回 false（用于测试和无音频设备的环境）。
type AudioManager struct {
	context *audio.Context
	pcm     map[string][]byte
	players map[string]*audio.Player
	volume  float64
	enabled bool
}

// NewAudioManager 创建音效管理器并合成全部音效
func NewAudioManager(ctx *audio.Context) *AudioManager {
	am := &AudioManager{
		context: ctx,
		pcm:     make(map[string][]byte, len(soundSpecs)),
		players: make(map[string]*audio.Player),
		volume:  0.8,
		enabled: ctx != nil,
	}
	if ctx == nil {
		return am
	}

	rng := rand.New(rand.NewSource(1))
	for id, sfx := range soundSpecs {
		am.pcm[id] = synthesize(sfx, SampleRate, rng)
	}
	log.Printf("[AudioManager] Synthesized %d sounds", len(am.pcm))
	return am
}

// PlaySound 播放音效
// 返回是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.enabled {
		return false
	}

	player := am.getPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Failed to rewind sound %s: %v", soundID, err)
		return false
	}
	player.Play()
	return true
}

// SetEnabled 开关音效，没有音频上下文时始终关闭
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled && am.context != nil
}

// IsEnabled 音效是否开启
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}

// SetVolume 设置音量，范围 [0, 1]
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// GetVolume 返回当前音量
func (am *AudioManager) GetVolume() float64 {
	return am.volume
}

// getPlayer 返回缓存的播放器，首次使用时创建
func (am *AudioManager) getPlayer(soundID string) *audio.Player {
	if player, ok := am.players[soundID]; ok {
		return player
	}

	pcm, ok := am.pcm[soundID]
	if !ok {
		log.Printf("[AudioManager] Unknown sound: %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.players[soundID] = player
	return player
}

// synthesize 生成 16 位小端立体声 PCM
// 正弦扫频与噪声按比例混合，包络为线性衰减
func synthesize(sfx soundSpec, sampleRate int, rng *rand.Rand) []byte {
	samples := int(sfx.duration * float64(sampleRate))
	buf := make([]byte, samples*4)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		freq := sfx.startFreq + (sfx.endFreq-sfx.startFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		tone := math.Sin(phase)
		noise := rng.Float64()*2 - 1
		v := ((1-sfx.noise)*tone + sfx.noise*noise) * sfx.gain * (1 - t)

		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
