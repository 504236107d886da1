package dqa

import (
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/vietmedtour/backend/internal/model"
)

// Generator 根据医院数据生成咨询问答
type Generator struct {
	extractor *Extractor
	rand      *randSource
}

func NewGenerator(extractor *Extractor, rand *randSource) *Generator {
	return &Generator{extractor: extractor, rand: rand}
}

// GenerateOne 针对单个医院生成一条问答。topic 为空时随机选择主题
func (g *Generator) GenerateOne(h *model.Hospital, topic string) (*model.Knowledge, error) {
	if topic == "" {
		topic = topicOrder[g.rand.Intn(len(topicOrder))]
	}
	templates, ok := questionTemplates[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	tpl := templates[g.rand.Intn(len(templates))]

	service := ""
	if strings.Contains(tpl.question, "{service_type}") {
		service = serviceTypes[g.rand.Intn(len(serviceTypes))]
	}

	question := strings.ReplaceAll(tpl.question, "{hospital_name}", h.Name)
	question = strings.ReplaceAll(question, "{service_type}", service)
	answer := tpl.answer(g, h, service)

	cityTag := h.City
	if cityTag == "" {
		cityTag = "Việt Nam"
	}

	k := &model.Knowledge{
		Question:        question,
		Answer:          answer,
		Category:        "Tư vấn bệnh viện",
		Subcategory:     subcategoryLabels[topic],
		DoctorName:      "Chuyên gia tư vấn",
		DoctorTitle:     "Bác sĩ chuyên khoa",
		HospitalName:    h.Name,
		Tags:            []string{"bệnh viện", cityTag, topic},
		DifficultyLevel: "beginner",
		Status:          "published",
		Source:          model.SourceAPI,
	}
	klog.V(6).Infof("generated qa for hospital %d topic %s: %s", h.ID, topic, question)
	return k, nil
}

// GenerateBatch 生成 count 条问答，医院与主题均随机，不做去重
func (g *Generator) GenerateBatch(count int) ([]*model.Knowledge, error) {
	hospitals, err := g.extractor.ListActiveHospitals()
	if err != nil {
		return nil, err
	}
	if len(hospitals) == 0 {
		return nil, ErrNoHospitals
	}

	items := make([]*model.Knowledge, 0, count)
	for i := 0; i < count; i++ {
		h := &hospitals[g.rand.Intn(len(hospitals))]
		k, err := g.GenerateOne(h, "")
		if err != nil {
			return nil, err
		}
		items = append(items, k)
	}
	return items, nil
}
