package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed enemies.yaml
var defaultEnemyTypes []byte

// enemyTypeExtras holds the YAML-only fields that don't map 1:1 onto EnemyTypeConfig.
type enemyTypeExtras struct {
	Base       string  `yaml:"base"`
	Tint       []uint8 `yaml:"tint"`
	SwingSound string  `yaml:"swingSound"`
}

var soundNames = map[string]SoundID{
	"none":  SoundNone,
	"swing": SoundSwing,
	"hit":   SoundHit,
	"death": SoundDeath,
}

// LoadEnemyTypes reads enemy type overrides from a YAML file and merges them into Enemy.Types.
func LoadEnemyTypes(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy types file: %w", err)
	}
	types, err := ParseEnemyTypes(data)
	if err != nil {
		return err
	}
	maps.Copy(Enemy.Types, types)
	return nil
}

// LoadDefaultEnemyTypes merges the embedded enemies.yaml into Enemy.Types.
func LoadDefaultEnemyTypes() error {
	types, err := ParseEnemyTypes(defaultEnemyTypes)
	if err != nil {
		return err
	}
	maps.Copy(Enemy.Types, types)
	return nil
}

// ParseEnemyTypes decodes a YAML document of enemy types. Each entry inherits
// from its base type, which must already be registered in Enemy.Types or
// appear earlier in the same document.
func ParseEnemyTypes(data []byte) (map[string]EnemyTypeConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse enemy types YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return map[string]EnemyTypeConfig{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("enemy types YAML must be a mapping of type name to fields")
	}

	out := make(map[string]EnemyTypeConfig, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		node := root.Content[i+1]

		var extras enemyTypeExtras
		if err := node.Decode(&extras); err != nil {
			return nil, fmt.Errorf("enemy type %s: %w", name, err)
		}

		baseName := extras.Base
		if baseName == "" {
			baseName = name
			if _, ok := Enemy.Types[name]; !ok {
				baseName = Enemy.DefaultType
			}
		}
		base, ok := out[baseName]
		if !ok {
			base, ok = Enemy.Types[baseName]
		}
		if !ok {
			return nil, fmt.Errorf("enemy type %s: unknown base type %q", name, baseName)
		}

		t := base
		t.Sockets = maps.Clone(base.Sockets)
		if err := node.Decode(&t); err != nil {
			return nil, fmt.Errorf("enemy type %s: %w", name, err)
		}
		t.Name = name

		if len(extras.Tint) == 4 {
			t.TintColor = color.RGBA{R: extras.Tint[0], G: extras.Tint[1], B: extras.Tint[2], A: extras.Tint[3]}
		} else if len(extras.Tint) != 0 {
			return nil, fmt.Errorf("enemy type %s: tint must have 4 components, got %d", name, len(extras.Tint))
		}
		if extras.SwingSound != "" {
			id, ok := soundNames[extras.SwingSound]
			if !ok {
				return nil, fmt.Errorf("enemy type %s: unknown swing sound %q", name, extras.SwingSound)
			}
			t.SwingSound = id
		}

		if err := validateEnemyType(&t); err != nil {
			return nil, fmt.Errorf("invalid enemy type %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func validateEnemyType(t *EnemyTypeConfig) error {
	if t.MaxHealth <= 0 {
		return fmt.Errorf("maxHealth must be positive, got %v", t.MaxHealth)
	}
	if t.Health > t.MaxHealth {
		return fmt.Errorf("health %v exceeds maxHealth %v", t.Health, t.MaxHealth)
	}
	if t.AttackMinTime < 0 || t.AttackMaxTime < t.AttackMinTime {
		return fmt.Errorf("attack time bounds [%v, %v] are invalid", t.AttackMinTime, t.AttackMaxTime)
	}
	if t.DeathDelay < 0 {
		return fmt.Errorf("deathDelay must not be negative, got %v", t.DeathDelay)
	}
	if t.CombatRadius > t.AgroRadius {
		return fmt.Errorf("combatRadius %v exceeds agroRadius %v", t.CombatRadius, t.AgroRadius)
	}
	if _, ok := Montages[t.Montage]; !ok {
		return fmt.Errorf("unknown montage %q", t.Montage)
	}
	return nil
}
