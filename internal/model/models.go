package model

import (
	"time"

	"gorm.io/datatypes"
)

// 数据来源标记，用于区分人工录入、外部接入和自动生成的数据
const (
	SourceManual  = "manual"
	SourceN8N     = "n8n"
	SourceAPI     = "api"
	SourceWebsite = "website"
)

type Hospital struct {
	ID             uint                        `json:"id" gorm:"primaryKey"`
	Name           string                      `json:"name" gorm:"size:200;not null"`
	Description    string                      `json:"description" gorm:"type:text"`
	Address        string                      `json:"address" gorm:"size:500"`
	City           string                      `json:"city" gorm:"size:100;index"`
	District       string                      `json:"district" gorm:"size:100;index"`
	Phone          string                      `json:"phone" gorm:"size:50"`
	Email          string                      `json:"email" gorm:"size:100"`
	Website        string                      `json:"website" gorm:"size:500"`
	LogoURL        string                      `json:"logo_url" gorm:"size:500"`
	Images         datatypes.JSONSlice[string] `json:"images"`
	Rating         float64                     `json:"rating" gorm:"type:decimal(3,2)"`
	ReviewCount    int                         `json:"review_count" gorm:"default:0"`
	Specialties    datatypes.JSONSlice[string] `json:"specialties"`
	Services       datatypes.JSONSlice[string] `json:"services"`
	Facilities     datatypes.JSONSlice[string] `json:"facilities"`
	Certifications datatypes.JSONSlice[string] `json:"certifications"`
	Level          string                      `json:"level" gorm:"size:10;index"` // A, B, C, D
	Type           string                      `json:"type" gorm:"size:50;default:private;index"` // public, private, international
	Status         string                      `json:"status" gorm:"size:50;default:active;index"` // active, inactive, pending
	Source         string                      `json:"source" gorm:"size:50;default:manual;index"` // n8n, manual, api
	ExternalID     string                      `json:"external_id" gorm:"size:100;index"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

type Knowledge struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	Question        string                      `json:"question" gorm:"size:500;not null"`
	Answer          string                      `json:"answer" gorm:"type:text;not null"`
	Category        string                      `json:"category" gorm:"size:100;default:Tư vấn chung;index"`
	Subcategory     string                      `json:"subcategory" gorm:"size:100;index"`
	DoctorName      string                      `json:"doctor_name" gorm:"size:100"`
	DoctorTitle     string                      `json:"doctor_title" gorm:"size:100"`
	DoctorAvatar    string                      `json:"doctor_avatar" gorm:"size:500"`
	HospitalName    string                      `json:"hospital_name" gorm:"size:200"`
	LikeCount       int                         `json:"like_count" gorm:"default:0"`
	ViewCount       int                         `json:"view_count" gorm:"default:0"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	DifficultyLevel string                      `json:"difficulty_level" gorm:"size:50;default:beginner;index"` // beginner, intermediate, advanced
	Status          string                      `json:"status" gorm:"size:50;default:published;index"` // draft, published, archived
	Source          string                      `json:"source" gorm:"size:50;default:manual;index"`
	ExternalID      string                      `json:"external_id" gorm:"size:100;index"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (Knowledge) TableName() string {
	return "knowledge"
}

type Service struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	Name            string                      `json:"name" gorm:"size:200;not null"`
	Description     string                      `json:"description" gorm:"type:text"`
	Category        string                      `json:"category" gorm:"size:100;not null;index"`
	Subcategory     string                      `json:"subcategory" gorm:"size:100;index"`
	PriceMin        float64                     `json:"price_min" gorm:"type:decimal(10,2)"`
	PriceMax        float64                     `json:"price_max" gorm:"type:decimal(10,2)"`
	Currency        string                      `json:"currency" gorm:"size:10;default:USD"`
	Duration        string                      `json:"duration" gorm:"size:100"`
	RecoveryTime    string                      `json:"recovery_time" gorm:"size:100"`
	DifficultyLevel string                      `json:"difficulty_level" gorm:"size:50;default:intermediate;index"`
	Icon            string                      `json:"icon" gorm:"size:500"`
	Images          datatypes.JSONSlice[string] `json:"images"`
	Features        datatypes.JSONSlice[string] `json:"features"`
	Requirements    datatypes.JSONSlice[string] `json:"requirements"`
	Risks           datatypes.JSONSlice[string] `json:"risks"`
	Rating          float64                     `json:"rating" gorm:"type:decimal(3,2)"`
	ReviewCount     int                         `json:"review_count" gorm:"default:0"`
	Tags            datatypes.JSONSlice[string] `json:"tags"`
	IsPopular       bool                        `json:"is_popular" gorm:"default:false;index"`
	IsRecommended   bool                        `json:"is_recommended" gorm:"default:false;index"`
	Status          string                      `json:"status" gorm:"size:50;default:active;index"`
	Source          string                      `json:"source" gorm:"size:50;default:manual;index"`
	ExternalID      string                      `json:"external_id" gorm:"size:100;index"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

type UserShare struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title" gorm:"size:200;not null"`
	Content      string                      `json:"content" gorm:"type:text;not null"`
	AuthorName   string                      `json:"author_name" gorm:"size:100;not null"`
	AuthorAvatar string                      `json:"author_avatar" gorm:"size:500"`
	SurgeryType  string                      `json:"surgery_type" gorm:"size:100;index"`
	HospitalName string                      `json:"hospital_name" gorm:"size:200;index"`
	Rating       int                         `json:"rating"` // 1-5 星
	Images       datatypes.JSONSlice[string] `json:"images"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	Status       string                      `json:"status" gorm:"size:50;default:published;index"`
	ViewCount    int                         `json:"view_count" gorm:"default:0"`
	LikeCount    int                         `json:"like_count" gorm:"default:0"`
	Source       string                      `json:"source" gorm:"size:50;default:manual;index"`
	ExternalID   string                      `json:"external_id" gorm:"size:100;index"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (UserShare) TableName() string {
	return "user_shares"
}

type Contact struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"size:100;not null"`
	Email            string     `json:"email" gorm:"size:100;not null"`
	Phone            string     `json:"phone" gorm:"size:50"`
	Subject          string     `json:"subject" gorm:"size:200;not null"`
	Message          string     `json:"message" gorm:"type:text;not null"`
	InquiryType      string     `json:"inquiry_type" gorm:"size:50;default:general;index"` // consultation, appointment, general, complaint, suggestion
	PreferredContact string     `json:"preferred_contact" gorm:"size:50;default:email"` // email, phone, wechat, whatsapp
	HospitalInterest string     `json:"hospital_interest" gorm:"size:200"`
	ServiceInterest  string     `json:"service_interest" gorm:"size:200"`
	BudgetRange      string     `json:"budget_range" gorm:"size:100"`
	Timeline         string     `json:"timeline" gorm:"size:100"`
	Status           string     `json:"status" gorm:"size:50;default:new;index"` // new, in_progress, resolved, closed
	Priority         string     `json:"priority" gorm:"size:50;default:medium;index"` // low, medium, high, urgent
	AssignedTo       string     `json:"assigned_to" gorm:"size:100;index"`
	Response         string     `json:"response" gorm:"type:text"`
	ResponseDate     *time.Time `json:"response_date"`
	Source           string     `json:"source" gorm:"size:50;default:website;index"` // website, n8n, api, manual
	ExternalID       string     `json:"external_id" gorm:"size:100;index"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
