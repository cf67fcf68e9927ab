package assets

import (
	"bytes"
	"fmt"
	_ "image/png" // декодер PNG для ebitenutil
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"pd-invaders/internal/defs"
)

const sampleRate = 44100

// AssetLoadError - картинка или звук не загрузились. Ошибка фатальная
// и возможна только при старте.
type AssetLoadError struct {
	Name string
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset %q from %s: %v", e.Name, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// Manager загружает картинки и звуки по символическому имени и отдаёт их игре.
type Manager struct {
	root     string
	images   map[string]*ebiten.Image
	audioCtx *audio.Context
	sounds   map[string]*audio.Player
}

// NewManager создаёт менеджер ассетов с корнем root
// (картинки в root/images, звуки в root/sounds).
func NewManager(root string) *Manager {
	return &Manager{
		root:   root,
		images: make(map[string]*ebiten.Image),
		sounds: make(map[string]*audio.Player),
	}
}

// RequiredImages lists every image a game with the given number of formation rows draws.
func RequiredImages(rows int) []string {
	names := []string{defs.SpriteBackground, defs.SpritePlayer, defs.SpriteMissile, defs.SpriteBomb}
	return append(names, defs.MonsterSprites(rows)...)
}

// LoadImages загружает PNG-картинки. Первая же ошибка прерывает загрузку.
func (m *Manager) LoadImages(names []string) error {
	for _, name := range names {
		if _, ok := m.images[name]; ok {
			continue
		}
		path := filepath.Join(m.root, "images", name+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return &AssetLoadError{Name: name, Path: path, Err: err}
		}
		m.images[name] = img
	}
	log.Printf("Loaded %d images from %s", len(m.images), m.root)
	return nil
}

// LoadSounds загружает WAV-звуки и готовит для каждого плеер.
func (m *Manager) LoadSounds(names []string) error {
	if m.audioCtx == nil {
		m.audioCtx = audio.CurrentContext()
		if m.audioCtx == nil {
			m.audioCtx = audio.NewContext(sampleRate)
		}
	}
	for _, name := range names {
		if _, ok := m.sounds[name]; ok {
			continue
		}
		path := filepath.Join(m.root, "sounds", name+".wav")
		player, err := m.loadSound(path)
		if err != nil {
			return &AssetLoadError{Name: name, Path: path, Err: err}
		}
		m.sounds[name] = player
	}
	log.Printf("Loaded %d sounds from %s", len(m.sounds), m.root)
	return nil
}

func (m *Manager) loadSound(path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	return m.audioCtx.NewPlayer(stream)
}

// Image возвращает картинку по имени или nil.
func (m *Manager) Image(name string) *ebiten.Image {
	return m.images[name]
}

// Size возвращает размер картинки; для незагруженной - 0, 0.
func (m *Manager) Size(name string) (int, int) {
	img, ok := m.images[name]
	if !ok {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Play перематывает звук в начало и запускает его. Ждать окончания не нужно.
func (m *Manager) Play(name string) {
	player, ok := m.sounds[name]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("WARNING: failed to rewind sound %s: %v", name, err)
		return
	}
	player.Play()
}

// Cleanup освобождает картинки и закрывает плееры.
func (m *Manager) Cleanup() {
	for name, img := range m.images {
		img.Deallocate()
		delete(m.images, name)
	}
	for name, player := range m.sounds {
		if err := player.Close(); err != nil {
			log.Printf("WARNING: failed to close sound %s: %v", name, err)
		}
		delete(m.sounds, name)
	}
	log.Println("All assets unloaded.")
}
