package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Level represents the difficulty of a course
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// VideoSource tells where a course or chapter video is hosted
type VideoSource string

const (
	VideoSourceYoutube VideoSource = "youtube"
	VideoSourceUpload  VideoSource = "upload"
)

// ChapterID identifies a chapter inside a course document.
// Stored documents may carry it as a JSON number or string.
type ChapterID string

// UnmarshalJSON accepts both numeric and string ids
func (c *ChapterID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ChapterID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("chapter id must be a number or string: %w", err)
	}
	*c = ChapterID(n.String())
	return nil
}

// MarshalJSON writes canonical integer ids as numbers and everything else as strings.
// Ids such as "01" or "+5" stay strings so they survive a round trip unchanged.
func (c ChapterID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(c)); err == nil && strconv.Itoa(n) == string(c) {
		return []byte(string(c)), nil
	}
	return json.Marshal(string(c))
}

// Chapter is a content unit of a course
type Chapter struct {
	ID          ChapterID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Duration    string      `json:"duration,omitempty"`
	VideoURL    string      `json:"videoUrl,omitempty"`
	YoutubeURL  string      `json:"youtubeUrl,omitempty"`
	VideoSource VideoSource `json:"videoSource,omitempty"`
	Content     string      `json:"content,omitempty"`
	Section     string      `json:"section,omitempty"`
	Topics      []string    `json:"topics,omitempty"`
}

// Instructor describes who teaches a course
type Instructor struct {
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// CourseContent is the structured document stored in courses.course_json
type CourseContent struct {
	Chapters    []Chapter   `json:"chapters"`
	Price       float64     `json:"price"`
	IsFree      bool        `json:"isFree"`
	VideoSource VideoSource `json:"videoSource"`
	YoutubeURL  string      `json:"youtubeUrl"`
	VideoURL    string      `json:"videoUrl"`
	Instructor  *Instructor `json:"instructor,omitempty"`
	Outcomes    []string    `json:"outcomes,omitempty"`
}

// Course represents a course in the catalog
type Course struct {
	ID             int           `json:"id"`
	CID            string        `json:"cid"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	Level          Level         `json:"level"`
	NoOfChapters   int           `json:"noOfChapters"`
	IncludeVideo   bool          `json:"includeVideo"`
	CourseJSON     CourseContent `json:"courseJson"`
	UserEmail      string        `json:"userEmail"`
	IsPublished    bool          `json:"isPublished"`
	BannerImageURL string        `json:"bannerImageUrl"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// CourseSummary is the course part of an enrollment listing
type CourseSummary struct {
	ID             int    `json:"id"`
	CID            string `json:"cid"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Level          Level  `json:"level"`
	NoOfChapters   int    `json:"noOfChapters"`
	BannerImageURL string `json:"bannerImageUrl"`
}

// ChapterInput represents a chapter in a create or update course request
type ChapterInput struct {
	ID          *ChapterID `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	VideoURL    string     `json:"videoUrl"`
	YoutubeURL  string     `json:"youtubeUrl"`
	VideoSource string     `json:"videoSource"`
	Content     string     `json:"content"`
	Section     string     `json:"section"`
	Topics      []string   `json:"topics"`
}

// CourseRequest represents the body of admin course create and update requests.
// Outcomes is newline-delimited as entered in the admin form.
type CourseRequest struct {
	Name           string         `json:"name" example:"Go for Backend Developers"`
	Description    string         `json:"description" example:"Build HTTP services in Go"`
	Category       string         `json:"category" example:"Programming"`
	Level          string         `json:"level" example:"beginner"`
	IncludeVideo   bool           `json:"includeVideo"`
	IsFree         bool           `json:"isFree"`
	Price          float64        `json:"price" example:"49.99"`
	VideoSource    string         `json:"videoSource" example:"youtube"`
	YoutubeURL     string         `json:"youtubeUrl"`
	VideoURL       string         `json:"videoUrl"`
	BannerImageURL string         `json:"bannerImageUrl"`
	InstructorName string         `json:"instructorName"`
	InstructorBio  string         `json:"instructorBio"`
	Outcomes       string         `json:"outcomes"`
	Chapters       []ChapterInput `json:"chapters"`
}

// DeleteCourseResponse is returned after an admin deletes a course
type DeleteCourseResponse struct {
	Success bool `json:"success"`
}
