package dqa

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
	"k8s.io/klog/v2"
)

// UnknownCityBucket 城市缺失时的统计桶
const UnknownCityBucket = "Chưa rõ"

// 常见的地区/分店后缀模式，用于提取连锁品牌的基础名称
var baseNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*-\s*(?:Hà Nội|TP\.HCM|Đà Nẵng|Hải Phòng|Cần Thơ|Nha Trang|Huế|Vũng Tàu|Biên Hòa)`),
	regexp.MustCompile(`(?i)\s*(?:Chi nhánh|Cơ sở)\s*\d+`),
	regexp.MustCompile(`(?i)\s*(?:Quận|Huyện)\s*\d+`),
}

// Extractor 医院数据提取器，负责从库中提取医院信息并做连锁分组
type Extractor struct {
	hospitals repository.HospitalRepository
}

func NewExtractor(hospitals repository.HospitalRepository) *Extractor {
	return &Extractor{hospitals: hospitals}
}

// ChainGroup 同一基础名称下的连锁医院分组
type ChainGroup struct {
	BaseName  string           `json:"base_name"`
	Hospitals []model.Hospital `json:"hospitals"`
}

// HospitalSummary 医院摘要清单行
type HospitalSummary struct {
	Index              int     `json:"index"`
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	City               string  `json:"city"`
	District           string  `json:"district"`
	Level              string  `json:"level"`
	Type               string  `json:"type"`
	Phone              string  `json:"phone"`
	Rating             float64 `json:"rating"`
	CertificationCount int     `json:"certification_count"`
	ServiceCount       int     `json:"service_count"`
}

// ListActiveHospitals 返回全部活跃医院，按 ID 升序
func (e *Extractor) ListActiveHospitals() ([]model.Hospital, error) {
	hospitals, err := e.hospitals.ListActive()
	if err != nil {
		return nil, fmt.Errorf("list active hospitals: %w", err)
	}
	klog.V(6).Infof("提取到 %d 家活跃医院", len(hospitals))
	return hospitals, nil
}

// NormalizeBaseName 去除医院名称末尾的城市/分店后缀，返回基础名称。
// 启发式处理：未命中的后缀保持原样
func NormalizeBaseName(fullName string) string {
	baseName := fullName
	for _, pattern := range baseNamePatterns {
		baseName = pattern.ReplaceAllString(baseName, "")
	}
	return strings.TrimSpace(baseName)
}

// GroupChains 按基础名称分组，只保留多于一家分店的品牌。
// 分组顺序与组内顺序均保持输入顺序，保证结果稳定
func (e *Extractor) GroupChains() ([]ChainGroup, error) {
	hospitals, err := e.ListActiveHospitals()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []ChainGroup
	for _, h := range hospitals {
		baseName := NormalizeBaseName(h.Name)
		i, ok := index[baseName]
		if !ok {
			index[baseName] = len(groups)
			groups = append(groups, ChainGroup{BaseName: baseName})
			i = len(groups) - 1
		}
		groups[i].Hospitals = append(groups[i].Hospitals, h)
	}

	chains := groups[:0]
	for _, g := range groups {
		if len(g.Hospitals) > 1 {
			chains = append(chains, g)
		}
	}

	klog.V(6).Infof("识别出 %d 个连锁医院品牌", len(chains))
	return chains, nil
}

// CitySummary 按城市统计活跃医院分布，城市缺失计入 UnknownCityBucket
func (e *Extractor) CitySummary() (map[string]int, error) {
	hospitals, err := e.ListActiveHospitals()
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int)
	for _, h := range hospitals {
		city := h.City
		if city == "" {
			city = UnknownCityBucket
		}
		distribution[city]++
	}
	return distribution, nil
}

// HospitalSummaries 生成医院摘要清单
func (e *Extractor) HospitalSummaries() ([]HospitalSummary, error) {
	hospitals, err := e.ListActiveHospitals()
	if err != nil {
		return nil, err
	}

	summaries := make([]HospitalSummary, 0, len(hospitals))
	for i, h := range hospitals {
		summaries = append(summaries, HospitalSummary{
			Index:              i + 1,
			ID:                 h.ID,
			Name:               h.Name,
			City:               h.City,
			District:           h.District,
			Level:              h.Level,
			Type:               h.Type,
			Phone:              h.Phone,
			Rating:             h.Rating,
			CertificationCount: len(h.Certifications),
			ServiceCount:       len(h.Services),
		})
	}
	return summaries, nil
}

// GetHospital 按 ID 获取医院
func (e *Extractor) GetHospital(id uint) (*model.Hospital, error) {
	h, err := e.hospitals.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrHospitalNotFound, id)
		}
		return nil, err
	}
	return h, nil
}
