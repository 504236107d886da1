package dqa

import (
	"fmt"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
	"k8s.io/klog/v2"
)

type districtTemplate struct {
	District      string
	AddressSuffix string
}

// 越南主要城市的地址模板，顺序即推荐顺序
var majorCities = []string{"Hà Nội", "TP.HCM", "Đà Nẵng", "Cần Thơ", "Hải Phòng"}

var cityTemplates = map[string][]districtTemplate{
	"Hà Nội": {
		{District: "Quận Ba Đình", AddressSuffix: "số 123 Đường Nguyễn Thái Học"},
		{District: "Quận Hoàn Kiếm", AddressSuffix: "số 456 Đường Tràng Tiền"},
		{District: "Quận Đống Đa", AddressSuffix: "số 789 Đường Láng"},
		{District: "Quận Cầu Giấy", AddressSuffix: "số 234 Đường Xuân Thủy"},
	},
	"TP.HCM": {
		{District: "Quận 1", AddressSuffix: "số 567 Đường Nguyễn Huệ"},
		{District: "Quận 3", AddressSuffix: "số 890 Đường Nam Kỳ Khởi Nghĩa"},
		{District: "Quận 5", AddressSuffix: "số 123 Đường Trần Hưng Đạo"},
		{District: "Quận Bình Thạnh", AddressSuffix: "số 456 Đường Điện Biên Phủ"},
	},
	"Đà Nẵng": {
		{District: "Quận Hải Châu", AddressSuffix: "số 234 Đường Hùng Vương"},
		{District: "Quận Thanh Khê", AddressSuffix: "số 567 Đường Điện Biên Phủ"},
	},
	"Cần Thơ": {
		{District: "Quận Ninh Kiều", AddressSuffix: "số 890 Đường 30 Tháng 4"},
	},
	"Hải Phòng": {
		{District: "Quận Hồng Bàng", AddressSuffix: "số 123 Đường Điện Biên Phủ"},
	},
}

var cityAreaCodes = map[string]string{
	"Hà Nội":    "024",
	"TP.HCM":    "028",
	"Đà Nẵng":   "0236",
	"Cần Thơ":   "0292",
	"Hải Phòng": "0225",
}

// BranchSuggestion 连锁品牌在缺失城市的分店补充建议
type BranchSuggestion struct {
	SuggestedName string `json:"suggested_name"`
	City          string `json:"city"`
	District      string `json:"district"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Type          string `json:"type"`
	Level         string `json:"level"`
	Priority      string `json:"priority"` // high, medium
}

// BranchInfo 连锁品牌现有分店信息
type BranchInfo struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	District string `json:"district"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// ChainAnalysis 单个连锁品牌的分析结果
type ChainAnalysis struct {
	ChainName     string             `json:"chain_name"`
	BranchCount   int                `json:"branch_count"`
	Branches      []BranchInfo       `json:"branches"`
	MissingCities []string           `json:"missing_cities"`
	Suggestions   []BranchSuggestion `json:"suggestions"`
}

// AnalyzeResult 全部连锁品牌的分析汇总
type AnalyzeResult struct {
	TotalChains int                `json:"total_chains"`
	Analyzed    []ChainAnalysis    `json:"analyzed"`
	Suggestions []BranchSuggestion `json:"suggestions"`
}

// ApplyError 单条建议落库失败记录
type ApplyError struct {
	Suggestion string `json:"suggestion"`
	Error      string `json:"error"`
}

// CreatedBranch 成功创建的分店
type CreatedBranch struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ApplyResult 建议落库结果，部分失败不回滚
type ApplyResult struct {
	CreatedCount int             `json:"created_count"`
	ErrorCount   int             `json:"error_count"`
	Created      []CreatedBranch `json:"created"`
	Errors       []ApplyError    `json:"errors"`
}

// Enhancer 连锁医院地址补充器
type Enhancer struct {
	extractor *Extractor
	hospitals repository.HospitalRepository
	rand      *randSource
}

func NewEnhancer(extractor *Extractor, hospitals repository.HospitalRepository, rand *randSource) *Enhancer {
	return &Enhancer{
		extractor: extractor,
		hospitals: hospitals,
		rand:      rand,
	}
}

// AnalyzeChains 分析各连锁品牌在主要城市的覆盖缺口并生成补充建议。
// 只读操作，不落库
func (e *Enhancer) AnalyzeChains() (*AnalyzeResult, error) {
	chains, err := e.extractor.GroupChains()
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{
		TotalChains: len(chains),
		Analyzed:    make([]ChainAnalysis, 0, len(chains)),
		Suggestions: []BranchSuggestion{},
	}

	for _, chain := range chains {
		analysis := ChainAnalysis{
			ChainName:   chain.BaseName,
			BranchCount: len(chain.Hospitals),
			Branches:    make([]BranchInfo, 0, len(chain.Hospitals)),
		}

		existingCities := make(map[string]bool)
		for _, h := range chain.Hospitals {
			analysis.Branches = append(analysis.Branches, BranchInfo{
				ID:       h.ID,
				Name:     h.Name,
				City:     h.City,
				District: h.District,
				Address:  h.Address,
				Phone:    h.Phone,
			})
			if h.City != "" {
				existingCities[h.City] = true
			}
		}

		for _, city := range majorCities {
			if !existingCities[city] {
				analysis.MissingCities = append(analysis.MissingCities, city)
			}
		}

		if len(analysis.MissingCities) > 0 {
			analysis.Suggestions = e.branchSuggestions(chain.BaseName, analysis.MissingCities)
			result.Suggestions = append(result.Suggestions, analysis.Suggestions...)
		}

		result.Analyzed = append(result.Analyzed, analysis)
	}

	klog.V(6).Infof("连锁医院分析完成: %d 个品牌, %d 条建议", result.TotalChains, len(result.Suggestions))
	return result, nil
}

// branchSuggestions 为品牌的每个缺失城市生成 1-2 条建议（每城最多 2 个地区模板）。
// 恰好缺失一个主要城市时建议为 high 优先级，否则为 medium
func (e *Enhancer) branchSuggestions(baseName string, missingCities []string) []BranchSuggestion {
	priority := "medium"
	if len(missingCities) == 1 {
		priority = "high"
	}

	var suggestions []BranchSuggestion
	for _, city := range missingCities {
		templates := cityTemplates[city]
		if len(templates) > 2 {
			templates = templates[:2]
		}
		for _, tpl := range templates {
			suggestions = append(suggestions, BranchSuggestion{
				SuggestedName: baseName + " - " + city,
				City:          city,
				District:      tpl.District,
				Address:       fmt.Sprintf("%s, %s, %s, Việt Nam", tpl.AddressSuffix, tpl.District, city),
				Phone:         e.phoneNumber(city),
				Type:          "private",
				Level:         "B",
				Priority:      priority,
			})
		}
	}
	return suggestions
}

// phoneNumber 基于城市区号生成建议电话：区号 + 随机 7 位数
func (e *Enhancer) phoneNumber(city string) string {
	areaCode, ok := cityAreaCodes[city]
	if !ok {
		areaCode = "024"
	}
	return fmt.Sprintf("%s %d", areaCode, e.rand.Intn(9000000)+1000000)
}

// ApplySuggestions 将 high 优先级建议落库为新医院行，最多 maxCount 条。
// 单条失败只记录，不中断其余建议
func (e *Enhancer) ApplySuggestions(maxCount int) (*ApplyResult, error) {
	analysis, err := e.AnalyzeChains()
	if err != nil {
		return nil, err
	}

	var selected []BranchSuggestion
	for _, s := range analysis.Suggestions {
		if s.Priority == "high" {
			selected = append(selected, s)
		}
	}
	if maxCount > 0 && len(selected) > maxCount {
		selected = selected[:maxCount]
	}

	result := &ApplyResult{
		Created: []CreatedBranch{},
		Errors:  []ApplyError{},
	}

	for _, s := range selected {
		hospital := &model.Hospital{
			Name:        s.SuggestedName,
			Description: fmt.Sprintf("Bệnh viện %s - Cơ sở %s", s.SuggestedName, s.District),
			Address:     s.Address,
			City:        s.City,
			District:    s.District,
			Phone:       s.Phone,
			Type:        s.Type,
			Level:       s.Level,
			Status:      "active",
			Source:      model.SourceAPI,
			Rating:      4.0,
			ReviewCount: 0,
		}

		if err := e.hospitals.Create(hospital); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, ApplyError{
				Suggestion: s.SuggestedName,
				Error:      err.Error(),
			})
			klog.Errorf("创建分店失败 %s: %v", s.SuggestedName, err)
			continue
		}

		result.CreatedCount++
		result.Created = append(result.Created, CreatedBranch{ID: hospital.ID, Name: hospital.Name})
		klog.V(6).Infof("成功创建分店: %s", s.SuggestedName)
	}

	klog.V(6).Infof("连锁医院自动补充完成: 成功 %d, 失败 %d", result.CreatedCount, result.ErrorCount)
	return result, nil
}
