package energy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed phases.yaml
var defaultPhasesYAML []byte

var phaseOrder = []string{string(PeriodMorning), string(PeriodAfternoon), string(PeriodEvening)}

// ErrInvalidPhases 在阶段配置缺失或时间区间非法时返回
var ErrInvalidPhases = errors.New("invalid energy phase configuration")

// Phase 描述一个能量阶段及其建议
// Start/End 为闭区间的小时范围
type Phase struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	EnergyLevel string   `json:"energy_level"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Focus       []string `json:"focus"`
	Activities  []string `json:"activities"`
	Breaks      []string `json:"breaks"`
	Social      []string `json:"social"`
}

// Guide 是静态的能量管理指导卡片
type Guide struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tips        []string `json:"tips" yaml:"tips"`
}

// ReflectionPrompts 早晚反思问题
type ReflectionPrompts struct {
	Morning []string `json:"morning" yaml:"morning"`
	Evening []string `json:"evening" yaml:"evening"`
}

type phaseDocument struct {
	Phases []struct {
		Key         string   `yaml:"key"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		EnergyLevel string   `yaml:"energy_level"`
		Hours       []int    `yaml:"hours"`
		Focus       []string `yaml:"focus"`
		Activities  []string `yaml:"activities"`
		Breaks      []string `yaml:"breaks"`
		Social      []string `yaml:"social"`
	} `yaml:"phases"`
	Drains   []string          `yaml:"drains"`
	Boosters []string          `yaml:"boosters"`
	Guides   []Guide           `yaml:"guides"`
	Prompts  ReflectionPrompts `yaml:"prompts"`
}

// PhaseTable 是启动时加载一次的只读阶段配置，所有读取方法都返回副本
type PhaseTable struct {
	phases   map[string]Phase
	drains   []string
	boosters []string
	guides   []Guide
	prompts  ReflectionPrompts
}

// LoadPhases 解析 YAML 阶段配置并校验
func LoadPhases(r io.Reader) (*PhaseTable, error) {
	var doc phaseDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode phases: %w", err)
	}

	table := &PhaseTable{
		phases:   make(map[string]Phase, len(doc.Phases)),
		drains:   slices.Clone(doc.Drains),
		boosters: slices.Clone(doc.Boosters),
		guides:   make([]Guide, 0, len(doc.Guides)),
		prompts: ReflectionPrompts{
			Morning: slices.Clone(doc.Prompts.Morning),
			Evening: slices.Clone(doc.Prompts.Evening),
		},
	}

	for _, raw := range doc.Phases {
		key := strings.ToLower(strings.TrimSpace(raw.Key))
		if !slices.Contains(phaseOrder, key) {
			return nil, fmt.Errorf("%w: unknown phase %q", ErrInvalidPhases, raw.Key)
		}
		if _, dup := table.phases[key]; dup {
			return nil, fmt.Errorf("%w: duplicate phase %q", ErrInvalidPhases, key)
		}
		if len(raw.Hours) != 2 {
			return nil, fmt.Errorf("%w: phase %s needs [start, end] hours", ErrInvalidPhases, key)
		}
		start, end := raw.Hours[0], raw.Hours[1]
		if start < 0 || end > 23 || start > end {
			return nil, fmt.Errorf("%w: phase %s has hours [%d, %d]", ErrInvalidPhases, key, start, end)
		}
		table.phases[key] = Phase{
			Key:         key,
			Name:        raw.Name,
			Description: raw.Description,
			EnergyLevel: raw.EnergyLevel,
			Start:       start,
			End:         end,
			Focus:       slices.Clone(raw.Focus),
			Activities:  slices.Clone(raw.Activities),
			Breaks:      slices.Clone(raw.Breaks),
			Social:      slices.Clone(raw.Social),
		}
	}

	for _, key := range phaseOrder {
		if _, ok := table.phases[key]; !ok {
			return nil, fmt.Errorf("%w: missing phase %s", ErrInvalidPhases, key)
		}
	}

	for _, guide := range doc.Guides {
		table.guides = append(table.guides, Guide{
			Title:       guide.Title,
			Description: guide.Description,
			Tips:        slices.Clone(guide.Tips),
		})
	}

	return table, nil
}

// LoadPhasesFile 从文件加载阶段配置；path 为空时返回内置配置
func LoadPhasesFile(path string) (*PhaseTable, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultPhases(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phases file: %w", err)
	}
	defer file.Close()

	return LoadPhases(file)
}

// DefaultPhases 返回内置的阶段配置
func DefaultPhases() *PhaseTable {
	table, err := LoadPhases(bytes.NewReader(defaultPhasesYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded phases.yaml is broken: %v", err))
	}
	return table
}

// Get 按名称查询阶段
func (t *PhaseTable) Get(key string) (Phase, bool) {
	phase, ok := t.phases[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Phase{}, false
	}
	return phase.clone(), true
}

// All 按 morning/afternoon/evening 的固定顺序返回全部阶段
func (t *PhaseTable) All() []Phase {
	phases := make([]Phase, 0, len(phaseOrder))
	for _, key := range phaseOrder {
		phases = append(phases, t.phases[key].clone())
	}
	return phases
}

// Current 返回包含 at 所在小时的第一个阶段，不在任何区间内时回退到 morning
// 小时按 at 自身的时区计算，调用方需先转换到用户时区；需要按引擎时区判断时使用 Engine.CurrentPhase
func (t *PhaseTable) Current(at time.Time) Phase {
	hour := at.Hour()
	for _, key := range phaseOrder {
		phase := t.phases[key]
		if hour >= phase.Start && hour <= phase.End {
			return phase.clone()
		}
	}
	return t.phases[string(PeriodMorning)].clone()
}

// Suggestions 返回记录时可选的活动标签：活动、休息、社交依次拼接
func (t *PhaseTable) Suggestions(key string) []string {
	phase, ok := t.Get(key)
	if !ok {
		return nil
	}
	suggestions := make([]string, 0, len(phase.Activities)+len(phase.Breaks)+len(phase.Social))
	suggestions = append(suggestions, phase.Activities...)
	suggestions = append(suggestions, phase.Breaks...)
	suggestions = append(suggestions, phase.Social...)
	return suggestions
}

// Drains 返回预置的消耗标签
func (t *PhaseTable) Drains() []string {
	return slices.Clone(t.drains)
}

// Boosters 返回预置的提升标签
func (t *PhaseTable) Boosters() []string {
	return slices.Clone(t.boosters)
}

// Guides 返回能量管理指导卡片
func (t *PhaseTable) Guides() []Guide {
	guides := make([]Guide, 0, len(t.guides))
	for _, guide := range t.guides {
		guide.Tips = slices.Clone(guide.Tips)
		guides = append(guides, guide)
	}
	return guides
}

// Prompts 返回早晚反思问题
func (t *PhaseTable) Prompts() ReflectionPrompts {
	return ReflectionPrompts{
		Morning: slices.Clone(t.prompts.Morning),
		Evening: slices.Clone(t.prompts.Evening),
	}
}

func (p Phase) clone() Phase {
	p.Focus = slices.Clone(p.Focus)
	p.Activities = slices.Clone(p.Activities)
	p.Breaks = slices.Clone(p.Breaks)
	p.Social = slices.Clone(p.Social)
	return p
}

// CurrentPhase 按引擎时区判断 at 所处的阶段
func (e Engine) CurrentPhase(table *PhaseTable, at time.Time) Phase {
	return table.Current(e.local(at))
}
