package dqa

import (
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

// Service DQA 子系统的统一入口，组装提取、增强、生成与调度
type Service struct {
	extractor *Extractor
	enhancer  *Enhancer
	generator *Generator
	scheduler *Scheduler
	autoStart bool
}

// NewService 按默认随机种子组装整个 DQA 流水线
func NewService(hospitals repository.HospitalRepository, knowledge repository.KnowledgeRepository, interval time.Duration, autoStart bool) *Service {
	rand := newRandSource(time.Now().UnixNano())
	extractor := NewExtractor(hospitals)
	generator := NewGenerator(extractor, rand)
	return &Service{
		extractor: extractor,
		enhancer:  NewEnhancer(extractor, hospitals, rand),
		generator: generator,
		scheduler: NewScheduler(generator, knowledge, interval),
		autoStart: autoStart,
	}
}

// Initialize 按配置决定是否启动定时生成
func (s *Service) Initialize() {
	if s.autoStart {
		s.scheduler.Start()
	} else {
		klog.V(6).Infof("dqa scheduler disabled by config")
	}
}

// Shutdown 停止定时任务
func (s *Service) Shutdown() {
	s.scheduler.Stop()
}

// HospitalList 医院概览与城市分布
func (s *Service) HospitalList() (map[string]interface{}, error) {
	summaries, err := s.extractor.HospitalSummaries()
	if err != nil {
		return nil, err
	}
	cities, err := s.extractor.CitySummary()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"total":             len(summaries),
		"hospitals":         summaries,
		"city_distribution": cities,
	}, nil
}

// GetHospital 按 ID 取单个医院详情
func (s *Service) GetHospital(id uint) (*model.Hospital, error) {
	return s.extractor.GetHospital(id)
}

// AnalyzeChains 连锁品牌覆盖分析
func (s *Service) AnalyzeChains() (*AnalyzeResult, error) {
	return s.enhancer.AnalyzeChains()
}

// Suggestions 返回全部待补充分店建议
func (s *Service) Suggestions() ([]BranchSuggestion, error) {
	result, err := s.enhancer.AnalyzeChains()
	if err != nil {
		return nil, err
	}
	return result.Suggestions, nil
}

// ApplySuggestions 执行高优先级建议，maxCount<=0 时默认 10
func (s *Service) ApplySuggestions(maxCount int) (*ApplyResult, error) {
	if maxCount <= 0 {
		maxCount = 10
	}
	return s.enhancer.ApplySuggestions(maxCount)
}

// GenerateDQA 手动触发生成，count==1 时单条，否则批量
func (s *Service) GenerateDQA(count int) (interface{}, error) {
	if count < 1 || count > 100 {
		return nil, fmt.Errorf("%w: %d", ErrCountOutOfRange, count)
	}
	if count == 1 {
		return s.scheduler.RunOnce(), nil
	}
	return s.scheduler.RunBatch(count)
}

// Stats 调度器运行统计
func (s *Service) Stats() map[string]interface{} {
	return s.scheduler.Stats()
}

// ControlScheduler 启停调度器。action: start, stop, restart
func (s *Service) ControlScheduler(action string) error {
	switch action {
	case "start":
		s.scheduler.Start()
	case "stop":
		s.scheduler.Stop()
	case "restart":
		s.scheduler.Stop()
		s.scheduler.Start()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return nil
}

// Running 调度器是否在运行
func (s *Service) Running() bool {
	return s.scheduler.Running()
}

// ResetStats 清零生成计数
func (s *Service) ResetStats() {
	s.scheduler.ResetStats()
}
