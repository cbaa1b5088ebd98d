package model

import (
	"gorm.io/datatypes"
)

// EmploymentType 用工类型
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentInternship EmploymentType = "INTERNSHIP"
	EmploymentTemporary  EmploymentType = "TEMPORARY"
)

func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship, EmploymentTemporary:
		return true
	}
	return false
}

// ExperienceLevel 经验级别
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "ENTRY"
	ExperienceMid       ExperienceLevel = "MID"
	ExperienceSenior    ExperienceLevel = "SENIOR"
	ExperienceLead      ExperienceLevel = "LEAD"
	ExperienceExecutive ExperienceLevel = "EXECUTIVE"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceLead, ExperienceExecutive:
		return true
	}
	return false
}

// JobStatus 职位审核/发布状态
type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobApproved  JobStatus = "APPROVED"
	JobRejected  JobStatus = "REJECTED"
	JobPublished JobStatus = "PUBLISHED"
	JobArchived  JobStatus = "ARCHIVED"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobPending, JobApproved, JobRejected, JobPublished, JobArchived:
		return true
	}
	return false
}

// Job 职位实体类
// original* 字段保存抓取到的原始内容，无前缀字段为规范化后用于发布的内容
type Job struct {
	BaseEntity
	Slug                string                      `gorm:"column:slug;size:191;uniqueIndex;not null"`
	OriginalTitle       string                      `gorm:"column:original_title"`
	OriginalDescription string                      `gorm:"column:original_description;type:text"`
	OriginalCompany     string                      `gorm:"column:original_company"`
	OriginalLocation    string                      `gorm:"column:original_location"`
	OriginalURL         string                      `gorm:"column:original_url"`
	Title               string                      `gorm:"column:title"`
	Description         string                      `gorm:"column:description;type:text"`
	Company             string                      `gorm:"column:company"`
	Location            string                      `gorm:"column:location"`
	SalaryMin           *int                        `gorm:"column:salary_min"`
	SalaryMax           *int                        `gorm:"column:salary_max"`
	SalaryCurrency      string                      `gorm:"column:salary_currency;size:3"`
	EmploymentType      EmploymentType              `gorm:"column:employment_type;size:16"`
	ExperienceLevel     ExperienceLevel             `gorm:"column:experience_level;size:16"`
	Status              JobStatus                   `gorm:"column:status;size:16;not null"`
	IsRemote            bool                        `gorm:"column:is_remote"`
	Tags                datatypes.JSONSlice[string] `gorm:"column:tags"`
	JobSourceID         string                      `gorm:"column:job_source_id;size:36;index;not null"`
	JobSource           *JobSource                  `gorm:"foreignKey:JobSourceID"`
	UserID              string                      `gorm:"column:user_id;size:36;index;not null"`
	User                *User                       `gorm:"foreignKey:UserID"`
}

func (Job) TableName() string {
	return "jobs"
}
