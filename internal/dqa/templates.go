package dqa

import (
	"fmt"
	"strings"

	"github.com/vietmedtour/backend/internal/model"
)

// 问题主题
const (
	TopicCertification = "certification"
	TopicLevel         = "level"
	TopicServices      = "services"
	TopicLocation      = "location"
	TopicContact       = "contact"
	TopicDoctors       = "doctors"
)

// topicOrder 主题的固定遍历顺序，随机选择与测试都依赖它
var topicOrder = []string{
	TopicCertification,
	TopicLevel,
	TopicServices,
	TopicLocation,
	TopicContact,
	TopicDoctors,
}

// subcategoryLabels 主题到子分类标签的映射
var subcategoryLabels = map[string]string{
	TopicCertification: "Chứng nhận",
	TopicLevel:         "Đánh giá",
	TopicServices:      "Dịch vụ",
	TopicLocation:      "Địa chỉ",
	TopicContact:       "Liên hệ",
	TopicDoctors:       "Đội ngũ",
}

// serviceTypes 填充 {service_type} 占位符的候选服务类型
var serviceTypes = []string{
	"nâng mũi", "cắt mí", "gọt mặt", "nâng ngực",
	"hút mỡ", "làm đẹp da", "căng da mặt", "botox",
}

// 拟人化开场白
var personalizedOpenings = []string{
	"Xin chào! Mình rất vui được tư vấn cho bạn về",
	"Chào bạn! Để mình chia sẻ thông tin về",
	"Hi bạn! Mình có thể giúp bạn tìm hiểu về",
	"Chào bạn nhé! Về vấn đề này, mình muốn chia sẻ rằng",
	"Xin chào! Theo kinh nghiệm của mình thì",
	"Chào bạn! Mình hiểu bạn đang quan tâm đến",
	"Hi! Đây là thông tin mà bạn cần biết về",
	"Chào bạn! Mình sẽ giải đáp thắc mắc của bạn về",
	"Xin chào! Để trả lời câu hỏi này, mình muốn nói rằng",
	"Chào bạn nhé! Về chủ đề này, mình có thể chia sẻ là",
	"Hi bạn! Mình rất sẵn lòng tư vấn cho bạn về",
	"Chào bạn! Dựa trên thông tin mình có thì",
	"Xin chào! Mình hy vọng có thể giúp bạn hiểu rõ về",
	"Chào bạn! Để bạn yên tâm hơn, mình xin chia sẻ về",
	"Hi! Mình sẽ cung cấp thông tin chi tiết về",
}

// 拟人化结尾语
var personalizedClosings = []string{
	"Hy vọng thông tin này hữu ích cho bạn nhé!",
	"Chúc bạn có những lựa chọn tốt nhất!",
	"Nếu còn thắc mắc gì, đừng ngần ngại liên hệ nhé!",
	"Mình hy vọng đã giải đáp được thắc mắc của bạn!",
	"Chúc bạn sức khỏe và làm đẹp thành công!",
	"Hy vọng bạn sẽ tìm được dịch vụ phù hợp!",
	"Mình luôn sẵn sàng hỗ trợ bạn thêm nếu cần!",
	"Chúc bạn có trải nghiệm tuyệt vời!",
	"Hy vọng thông tin này giúp bạn đưa ra quyết định đúng đắn!",
	"Chúc bạn may mắn và thành công!",
}

// 拟人化过渡词和口头语
var casualExpressions = []string{
	"À mà", "Nói thêm là", "Bạn biết không", "Thực ra thì", "Mình nghĩ rằng",
	"Theo mình biết", "Nói chung là", "Đặc biệt là", "Quan trọng nhất là",
	"Bạn nên lưu ý", "Mình khuyên bạn", "Thường thì", "Nhân tiện", "Ngoài ra",
}

// answerFunc 答案生成函数。service 仅对带 {service_type} 的模板有意义
type answerFunc func(g *Generator, h *model.Hospital, service string) string

// questionTemplate 问题模板与其绑定的答案生成函数
type questionTemplate struct {
	question string
	answer   answerFunc
}

var questionTemplates = map[string][]questionTemplate{
	TopicCertification: {
		{"{hospital_name} có những chứng nhận y tế nào?", (*Generator).certificationAnswer2},
		{"{hospital_name} có đủ tiêu chuẩn hoạt động không?", (*Generator).standardAnswer2},
		{"Giấy phép hoạt động của {hospital_name} như thế nào?", (*Generator).licenseAnswer2},
	},
	TopicLevel: {
		{"{hospital_name} là bệnh viện hạng nào?", (*Generator).levelAnswer2},
		{"Đánh giá cấp độ của {hospital_name}?", (*Generator).ratingAnswer2},
	},
	TopicServices: {
		{"{hospital_name} cung cấp những dịch vụ gì?", (*Generator).servicesAnswer2},
		{"Các dịch vụ chuyên khoa tại {hospital_name}?", (*Generator).specialtiesAnswer2},
		{"{hospital_name} có dịch vụ {service_type} không?", (*Generator).specificServiceAnswer},
	},
	TopicLocation: {
		{"{hospital_name} ở đâu?", (*Generator).locationAnswer2},
		{"Địa chỉ cụ thể của {hospital_name}?", (*Generator).addressAnswer2},
		{"Làm sao để đến {hospital_name}?", (*Generator).directionsAnswer2},
	},
	TopicContact: {
		{"Số điện thoại của {hospital_name} là gì?", (*Generator).phoneAnswer2},
		{"Cách liên hệ với {hospital_name}?", (*Generator).contactAnswer2},
		{"Làm sao để đặt lịch tại {hospital_name}?", (*Generator).appointmentAnswer2},
	},
	TopicDoctors: {
		{"Đội ngũ bác sĩ tại {hospital_name} như thế nào?", (*Generator).doctorsAnswer2},
		{"{hospital_name} có bác sĩ chuyên môn cao không?", (*Generator).expertiseAnswer2},
	},
}

// 以下 *Answer2 包装器统一签名，便于注册进模板表
func (g *Generator) certificationAnswer2(h *model.Hospital, _ string) string { return g.certificationAnswer(h) }
func (g *Generator) standardAnswer2(h *model.Hospital, _ string) string      { return g.standardAnswer(h) }
func (g *Generator) licenseAnswer2(h *model.Hospital, _ string) string       { return g.licenseAnswer(h) }
func (g *Generator) levelAnswer2(h *model.Hospital, _ string) string         { return g.levelAnswer(h) }
func (g *Generator) ratingAnswer2(h *model.Hospital, _ string) string        { return g.ratingAnswer(h) }
func (g *Generator) servicesAnswer2(h *model.Hospital, _ string) string      { return g.servicesAnswer(h) }
func (g *Generator) specialtiesAnswer2(h *model.Hospital, _ string) string   { return g.specialtiesAnswer(h) }
func (g *Generator) locationAnswer2(h *model.Hospital, _ string) string      { return g.locationAnswer(h) }
func (g *Generator) addressAnswer2(h *model.Hospital, _ string) string       { return g.addressAnswer(h) }
func (g *Generator) directionsAnswer2(h *model.Hospital, _ string) string    { return g.directionsAnswer(h) }
func (g *Generator) phoneAnswer2(h *model.Hospital, _ string) string         { return g.phoneAnswer(h) }
func (g *Generator) contactAnswer2(h *model.Hospital, _ string) string       { return g.contactAnswer(h) }
func (g *Generator) appointmentAnswer2(h *model.Hospital, _ string) string   { return g.appointmentAnswer(h) }
func (g *Generator) doctorsAnswer2(h *model.Hospital, _ string) string       { return g.doctorsAnswer(h) }
func (g *Generator) expertiseAnswer2(h *model.Hospital, _ string) string     { return g.expertiseAnswer(h) }

func (g *Generator) randomOpening() string {
	return personalizedOpenings[g.rand.Intn(len(personalizedOpenings))]
}

func (g *Generator) randomClosing() string {
	return personalizedClosings[g.rand.Intn(len(personalizedClosings))]
}

func (g *Generator) randomExpression() string {
	return casualExpressions[g.rand.Intn(len(casualExpressions))]
}

func hospitalLevel(h *model.Hospital) string {
	if h.Level == "" {
		return "B"
	}
	return h.Level
}

func hospitalRating(h *model.Hospital) float64 {
	if h.Rating == 0 {
		return 4.0
	}
	return h.Rating
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// ========== 答案生成方法 ==========
// 均为医院自身字段的纯模板填充，字段缺失时回退到通用表述

func (g *Generator) certificationAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	if len(h.Certifications) > 0 {
		return fmt.Sprintf("%s %s.\n\n%s đã được cấp các chứng nhận sau:\n\n%s\n\n%s, tất cả chứng nhận này đều được Bộ Y tế Việt Nam công nhận và đảm bảo tiêu chuẩn chất lượng cao nhé! %s",
			opening, h.Name, h.Name, bulletList(h.Certifications), expression, closing)
	}
	return fmt.Sprintf("%s %s.\n\n%s là bệnh viện được cấp phép hoạt động hợp pháp bởi Bộ Y tế Việt Nam đấy. %s, bệnh viện tuân thủ đầy đủ các quy định về an toàn y tế và chất lượng dịch vụ. %s",
		opening, h.Name, h.Name, expression, closing)
}

func (g *Generator) standardAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	return fmt.Sprintf("%s tiêu chuẩn của %s.\n\n%s đáp ứng đầy đủ tiêu chuẩn hoạt động của bệnh viện hạng %s đấy. %s, cơ sở y tế được kiểm tra định kỳ và duy trì các tiêu chuẩn về: cơ sở vật chất, trang thiết bị y tế, đội ngũ nhân viên chuyên môn, và quy trình điều trị an toàn. %s",
		opening, h.Name, h.Name, hospitalLevel(h), expression, closing)
}

func (g *Generator) licenseAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	return fmt.Sprintf("%s giấy phép của %s.\n\n%s có giấy phép hoạt động hợp pháp được cấp bởi Sở Y tế và Bộ Y tế Việt Nam đấy. %s, giấy phép được gia hạn định kỳ và tuân thủ các quy định hiện hành về hoạt động phẫu thuật thẩm mỹ. %s",
		opening, h.Name, h.Name, expression, closing)
}

func (g *Generator) levelAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	levelDesc := map[string]string{
		"A": "hạng A (cao nhất)",
		"B": "hạng B (tiêu chuẩn cao)",
		"C": "hạng C (tiêu chuẩn tốt)",
		"D": "hạng D (tiêu chuẩn cơ bản)",
	}
	desc, ok := levelDesc[hospitalLevel(h)]
	if !ok {
		desc = "hạng B"
	}

	return fmt.Sprintf("%s cấp độ của %s.\n\n%s là bệnh viện %s đấy! %s, với đánh giá %.1f/5.0 từ người dùng, bệnh viện cung cấp dịch vụ chất lượng và đáng tin cậy lắm. %s",
		opening, h.Name, h.Name, desc, expression, hospitalRating(h), closing)
}

func (g *Generator) ratingAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()
	rating := hospitalRating(h)

	var desc string
	switch {
	case rating >= 4.5:
		desc = "xuất sắc"
	case rating >= 4.0:
		desc = "rất tốt"
	case rating >= 3.5:
		desc = "tốt"
	default:
		desc = "ổn định"
	}

	return fmt.Sprintf("%s đánh giá của %s.\n\n%s được đánh giá %s với %.1f/5.0 sao từ %d lượt đánh giá đấy! %s, bệnh viện cam kết cung cấp dịch vụ chất lượng và chăm sóc khách hàng tận tâm. %s",
		opening, h.Name, h.Name, desc, rating, h.ReviewCount, expression, closing)
}

func (g *Generator) servicesAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	if len(h.Services) > 0 {
		services := h.Services
		if len(services) > 8 {
			services = services[:8]
		}
		return fmt.Sprintf("%s các dịch vụ tại %s.\n\n%s cung cấp các dịch vụ phẫu thuật thẩm mỹ sau đây:\n\n%s\n\n%s, còn nhiều dịch vụ khác nữa nhé! Vui lòng liên hệ để được tư vấn chi tiết. %s",
			opening, h.Name, h.Name, bulletList(services), expression, closing)
	}

	phone := h.Phone
	if phone == "" {
		phone = "bệnh viện"
	}
	return fmt.Sprintf("%s dịch vụ của %s.\n\n%s cung cấp đa dạng dịch vụ phẫu thuật thẩm mỹ bao gồm: phẫu thuật khuôn mặt, nâng ngực, hút mỡ, làm đẹp da, và nhiều dịch vụ khác đấy. %s, vui lòng liên hệ %s để được tư vấn chi tiết nhé! %s",
		opening, h.Name, h.Name, expression, phone, closing)
}

func (g *Generator) specialtiesAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	if len(h.Specialties) > 0 {
		return fmt.Sprintf("%s các chuyên khoa tại %s.\n\nCác chuyên khoa tại %s:\n\n%s\n\n%s, đội ngũ bác sĩ giàu kinh nghiệm và trang thiết bị hiện đại lắm! %s",
			opening, h.Name, h.Name, bulletList(h.Specialties), expression, closing)
	}
	return fmt.Sprintf("%s chuyên môn của %s.\n\n%s chuyên về các lĩnh vực phẫu thuật thẩm mỹ toàn diện đấy. %s, với đội ngũ bác sĩ chuyên môn cao và trang thiết bị y tế hiện đại. %s",
		opening, h.Name, h.Name, expression, closing)
}

func (g *Generator) specificServiceAnswer(h *model.Hospital, service string) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	hasService := false
	for _, s := range h.Services {
		if strings.Contains(strings.ToLower(s), strings.ToLower(service)) {
			hasService = true
			break
		}
	}

	phone := h.Phone
	if phone == "" {
		phone = "bệnh viện"
	}

	if hasService {
		return fmt.Sprintf("%s dịch vụ %s tại %s.\n\nCó nhé! %s có cung cấp dịch vụ %s đấy. %s, đây là một trong những dịch vụ chuyên môn của bệnh viện với đội ngũ bác sĩ giàu kinh nghiệm. Vui lòng liên hệ %s để đặt lịch tư vấn nhé! %s",
			opening, service, h.Name, h.Name, service, expression, phone, closing)
	}
	return fmt.Sprintf("%s dịch vụ %s tại %s.\n\n%s cung cấp nhiều dịch vụ phẫu thuật thẩm mỹ đấy. %s, về dịch vụ %s cụ thể, vui lòng liên hệ trực tiếp %s để được tư vấn chi tiết nhất nhé! %s",
		opening, service, h.Name, h.Name, expression, service, phone, closing)
}

func (g *Generator) locationAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	city := h.City
	if city == "" {
		city = "Việt Nam"
	}
	place := city
	if h.District != "" {
		place = h.District + ", " + city
	}

	detail := "vui lòng liên hệ để biết địa chỉ chi tiết nhé"
	if h.Address != "" {
		detail = "địa chỉ cụ thể là: " + h.Address
	}

	return fmt.Sprintf("%s vị trí của %s.\n\n%s tọa lạc tại %s đấy. %s, %s. %s",
		opening, h.Name, h.Name, place, expression, detail, closing)
}

func (g *Generator) addressAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	if h.Address != "" {
		city := h.City
		if city == "" {
			city = "N/A"
		}
		phoneLine := ""
		if h.Phone != "" {
			phoneLine = "Điện thoại: " + h.Phone
		}
		return fmt.Sprintf("%s địa chỉ cụ thể của %s.\n\nĐịa chỉ: %s\nThành phố: %s\n%s\n\n%s, bạn có thể tìm đường bằng Google Maps hoặc liên hệ hotline để được hướng dẫn nhé! %s",
			opening, h.Name, h.Address, city, phoneLine, expression, closing)
	}

	city := h.City
	if city == "" {
		city = "Việt Nam"
	}
	phone := h.Phone
	if phone == "" {
		phone = "bệnh viện"
	}
	return fmt.Sprintf("%s địa chỉ của %s.\n\n%s tọa lạc tại %s đấy. %s, vui lòng liên hệ %s để được hướng dẫn đường đi chi tiết nhé! %s",
		opening, h.Name, h.Name, city, expression, phone, closing)
}

func (g *Generator) directionsAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	city := h.City
	if city == "" {
		city = "thành phố"
	}
	phone := h.Phone
	if phone == "" {
		phone = "bệnh viện"
	}
	addressLine := ""
	if h.Address != "" {
		addressLine = "Địa chỉ: " + h.Address
	}

	return fmt.Sprintf("%s cách đến %s.\n\nĐể đến %s, bạn có thể làm như sau:\n\n1. Sử dụng Google Maps tìm kiếm \"%s\"\n2. Đi xe bus/taxi đến %s\n3. Liên hệ hotline %s để được hướng dẫn\n\n%s\n\n%s, đừng ngần ngại hỏi đường nếu cần nhé! %s",
		opening, h.Name, h.Name, h.Name, city, phone, addressLine, expression, closing)
}

func (g *Generator) phoneAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	if h.Phone != "" {
		return fmt.Sprintf("%s số điện thoại của %s.\n\nSố điện thoại liên hệ %s: %s\n\nThời gian làm việc: 8:00 - 20:00 (Thứ 2 - Chủ nhật)\n\n%s, bạn có thể gọi để đặt lịch tư vấn hoặc hỏi thông tin chi tiết nhé! %s",
			opening, h.Name, h.Name, h.Phone, expression, closing)
	}

	website := h.Website
	if website == "" {
		website = "của bệnh viện"
	}
	place := h.Address
	if place == "" {
		place = h.City
	}
	if place == "" {
		place = "địa chỉ bệnh viện"
	}
	return fmt.Sprintf("%s cách liên hệ %s.\n\nĐể liên hệ %s, bạn có thể truy cập website %s hoặc đến trực tiếp tại %s đấy. %s, nhân viên sẽ hỗ trợ bạn nhiệt tình! %s",
		opening, h.Name, h.Name, website, place, expression, closing)
}

func (g *Generator) contactAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	var contacts []string
	if h.Phone != "" {
		contacts = append(contacts, "Điện thoại: "+h.Phone)
	}
	if h.Email != "" {
		contacts = append(contacts, "Email: "+h.Email)
	}
	if h.Website != "" {
		contacts = append(contacts, "Website: "+h.Website)
	}
	if h.Address != "" {
		contacts = append(contacts, "Địa chỉ: "+h.Address)
	}

	if len(contacts) > 0 {
		return fmt.Sprintf("%s thông tin liên hệ của %s.\n\nThông tin liên hệ %s:\n\n%s\n\nThời gian làm việc: 8:00 - 20:00 hàng ngày.\n\n%s, đội ngũ tư vấn luôn sẵn sàng hỗ trợ bạn! %s",
			opening, h.Name, h.Name, strings.Join(contacts, "\n"), expression, closing)
	}

	city := h.City
	if city == "" {
		city = "địa chỉ bệnh viện"
	}
	return fmt.Sprintf("%s cách liên hệ %s.\n\nBạn có thể liên hệ %s tại %s đấy. %s, vui lòng truy cập website hoặc đến trực tiếp để được tư vấn nhé! %s",
		opening, h.Name, h.Name, city, expression, closing)
}

func (g *Generator) appointmentAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	phone := h.Phone
	if phone == "" {
		phone = "xem website"
	}
	website := h.Website
	if website == "" {
		website = "đang cập nhật"
	}
	place := h.Address
	if place == "" {
		place = h.City
	}
	if place == "" {
		place = "địa chỉ bệnh viện"
	}

	return fmt.Sprintf("%s cách đặt lịch tại %s.\n\nĐể đặt lịch tại %s, bạn có thể làm theo các cách sau:\n\n1. Gọi hotline: %s\n2. Đăng ký qua website: %s\n3. Đến trực tiếp tại: %s\n\n%s, đội ngũ tư vấn sẽ hỗ trợ bạn lựa chọn thời gian phù hợp và chuẩn bị các thủ tục cần thiết. %s",
		opening, h.Name, h.Name, phone, website, place, expression, closing)
}

func (g *Generator) doctorsAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	return fmt.Sprintf("%s đội ngũ bác sĩ tại %s.\n\nĐội ngũ bác sĩ tại %s gồm các chuyên gia giàu kinh nghiệm:\n\n- Bác sĩ chuyên khoa phẫu thuật thẩm mỹ\n- Chứng chỉ hành nghề quốc tế\n- Nhiều năm kinh nghiệm\n- Thường xuyên cập nhật kỹ thuật mới\n\n%s, tất cả bác sĩ đều được đào tạo bài bản và có chứng chỉ hành nghề hợp lệ đấy! %s",
		opening, h.Name, h.Name, expression, closing)
}

func (g *Generator) expertiseAnswer(h *model.Hospital) string {
	opening := g.randomOpening()
	closing := g.randomClosing()
	expression := g.randomExpression()

	return fmt.Sprintf("%s chuyên môn của đội ngũ bác sĩ tại %s.\n\n%s tự hào có đội ngũ bác sĩ chuyên môn cao với:\n\n- Bằng cấp chuyên khoa sâu\n- Kinh nghiệm thực tế phong phú\n- Kỹ thuật phẫu thuật tiên tiến\n- Đánh giá %.1f/5.0 từ khách hàng\n\n%s, bệnh viện luôn đặt chất lượng và an toàn lên hàng đầu! %s",
		opening, h.Name, h.Name, hospitalRating(h), expression, closing)
}
