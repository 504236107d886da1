package dqa

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/repository"
)

// RunResult 单次生成的结果
type RunResult struct {
	Success      bool   `json:"success"`
	KnowledgeID  uint   `json:"knowledge_id,omitempty"`
	Question     string `json:"question,omitempty"`
	HospitalName string `json:"hospital_name,omitempty"`
	Error        string `json:"error,omitempty"`
}

// BatchItem 批量生成中成功入库的条目
type BatchItem struct {
	ID           uint   `json:"id"`
	Question     string `json:"question"`
	HospitalName string `json:"hospital_name"`
}

// BatchResult 批量生成的汇总结果，部分失败不影响其余条目
type BatchResult struct {
	Total   int         `json:"total"`
	Success int         `json:"success"`
	Failed  int         `json:"failed"`
	Created []BatchItem `json:"created"`
	Errors  []string    `json:"errors,omitempty"`
}

// Scheduler 定时自动生成问答。计数器由多个 goroutine 访问，需加锁
type Scheduler struct {
	generator *Generator
	knowledge repository.KnowledgeRepository
	interval  time.Duration

	mu        sync.Mutex
	running   bool
	cancel    context.CancelFunc
	attempted int
	succeeded int
	failed    int
	lastRun   time.Time
	nextRun   time.Time
}

func NewScheduler(generator *Generator, knowledge repository.KnowledgeRepository, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{
		generator: generator,
		knowledge: knowledge,
		interval:  interval,
	}
}

// Start 启动定时任务，已在运行时为空操作
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		klog.V(6).Infof("dqa scheduler already running")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.cancel = cancel
	s.nextRun = nextQuarterHour(time.Now())
	s.mu.Unlock()

	klog.V(6).Infof("dqa scheduler started, interval %s", s.interval)
	go s.loop(ctx)
}

// Stop 停止定时任务，可重复调用。进行中的一次生成会执行完
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cancel()
	s.cancel = nil
	s.running = false
	s.nextRun = time.Time{}
	klog.V(6).Infof("dqa scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result := s.RunOnce()
			if !result.Success {
				klog.Errorf("scheduled dqa generation failed: %s", result.Error)
			}
			s.mu.Lock()
			s.nextRun = nextQuarterHour(time.Now())
			s.mu.Unlock()
		}
	}
}

// RunOnce 随机挑一个医院生成一条问答并入库。任何失败都只体现在返回值与计数器里
func (s *Scheduler) RunOnce() RunResult {
	s.mu.Lock()
	s.attempted++
	s.lastRun = time.Now()
	s.mu.Unlock()

	fail := func(err error) RunResult {
		s.mu.Lock()
		s.failed++
		s.mu.Unlock()
		return RunResult{Success: false, Error: err.Error()}
	}

	hospitals, err := s.generator.extractor.ListActiveHospitals()
	if err != nil {
		return fail(fmt.Errorf("list hospitals: %w", err))
	}
	if len(hospitals) == 0 {
		return fail(ErrNoHospitals)
	}

	h := &hospitals[s.generator.rand.Intn(len(hospitals))]
	k, err := s.generator.GenerateOne(h, "")
	if err != nil {
		return fail(err)
	}
	k.ExternalID = autoExternalID("dqa_auto")
	if err := s.knowledge.Create(k); err != nil {
		return fail(fmt.Errorf("save knowledge: %w", err))
	}

	s.mu.Lock()
	s.succeeded++
	s.mu.Unlock()
	klog.V(6).Infof("dqa auto-generated knowledge %d for %s", k.ID, h.Name)
	return RunResult{
		Success:      true,
		KnowledgeID:  k.ID,
		Question:     k.Question,
		HospitalName: h.Name,
	}
}

// RunBatch 批量生成 count 条并逐条入库，单条失败不中断
func (s *Scheduler) RunBatch(count int) (*BatchResult, error) {
	items, err := s.generator.GenerateBatch(count)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{Total: len(items)}
	for _, k := range items {
		k.ExternalID = autoExternalID("dqa_batch")
		if err := s.knowledge.Create(k); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", k.HospitalName, err))
			klog.Errorf("save batch knowledge for %s: %v", k.HospitalName, err)
			continue
		}
		result.Success++
		result.Created = append(result.Created, BatchItem{
			ID:           k.ID,
			Question:     k.Question,
			HospitalName: k.HospitalName,
		})
	}

	s.mu.Lock()
	s.attempted += result.Total
	s.succeeded += result.Success
	s.failed += result.Failed
	s.lastRun = time.Now()
	s.mu.Unlock()
	return result, nil
}

// Stats 当前运行状态与计数快照
func (s *Scheduler) Stats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	successRate := "N/A"
	if s.attempted > 0 {
		successRate = fmt.Sprintf("%.2f%%", float64(s.succeeded)/float64(s.attempted)*100)
	}
	stats := map[string]interface{}{
		"running":         s.running,
		"total_generated": s.attempted,
		"total_success":   s.succeeded,
		"total_failed":    s.failed,
		"success_rate":    successRate,
		"interval":        s.interval.String(),
	}
	if !s.lastRun.IsZero() {
		stats["last_run"] = s.lastRun
	}
	if !s.nextRun.IsZero() {
		stats["next_run"] = s.nextRun
	}
	return stats
}

// ResetStats 清零计数器，不影响运行状态
func (s *Scheduler) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempted = 0
	s.succeeded = 0
	s.failed = 0
	s.lastRun = time.Time{}
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// nextQuarterHour 对齐到下一个 15 分钟整点
func nextQuarterHour(now time.Time) time.Time {
	add := 15 - now.Minute()%15
	return now.Truncate(time.Minute).Add(time.Duration(add) * time.Minute)
}

func autoExternalID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
