package main

import (
	"strconv"
	"strings"

	"github.com/coursehub/backend/internal/models"
)

type starterChapter struct {
	name     string
	duration string
	topics   []string
}

type starterCourse struct {
	cid         string
	name        string
	description string
	category    string
	level       models.Level
	price       float64
	chapters    []starterChapter
}

var starterCatalog = []starterCourse{
	{
		cid:         "html-css-js-basics",
		name:        "HTML, CSS & JavaScript Fundamentals",
		description: "Learn the building blocks of web development with HTML, CSS, and JavaScript. Perfect for beginners who want to start their web development journey.",
		category:    "Web Development",
		level:       models.LevelBeginner,
		price:       29.99,
		chapters: []starterChapter{
			{"Introduction to Web Development", "45 minutes", []string{"What is web development", "How websites work", "Tools you need"}},
			{"HTML Basics", "2 hours", []string{"HTML structure", "Common HTML tags", "Forms and inputs"}},
			{"CSS Styling", "3 hours", []string{"CSS selectors", "Box model", "Flexbox and Grid"}},
			{"JavaScript Fundamentals", "4 hours", []string{"Variables and data types", "Functions", "DOM manipulation"}},
			{"Building Your First Website", "3 hours", []string{"Project setup", "Creating a portfolio", "Deployment"}},
		},
	},
	{
		cid:         "react-tailwind-complete",
		name:        "ReactJS & Tailwind CSS Complete Guide",
		description: "Master modern React development with Tailwind CSS. Build beautiful, responsive web applications with the latest React features and best practices.",
		category:    "Web Development",
		level:       models.LevelIntermediate,
		price:       49.99,
		chapters: []starterChapter{
			{"React Fundamentals", "2 hours", []string{"Components and JSX", "Props and State", "Event handling"}},
			{"Hooks and State Management", "3 hours", []string{"useState and useEffect", "Custom hooks", "Context API"}},
			{"Tailwind CSS Introduction", "2 hours", []string{"Utility-first CSS", "Responsive design", "Custom components"}},
			{"Building Real Projects", "6 hours", []string{"E-commerce site", "Dashboard application", "Portfolio website"}},
		},
	},
	{
		cid:         "react-native-mobile",
		name:        "React Native Mobile Development",
		description: "Learn to build cross-platform mobile applications using React Native. Create iOS and Android apps with a single codebase.",
		category:    "Mobile Development",
		level:       models.LevelIntermediate,
		price:       39.99,
		chapters: []starterChapter{
			{"React Native Setup", "1 hour", []string{"Environment setup", "Expo vs CLI", "First app"}},
			{"Core Components", "3 hours", []string{"View, Text, Image", "ScrollView and FlatList", "Touchable components"}},
			{"Navigation", "2 hours", []string{"React Navigation", "Stack and Tab navigation", "Deep linking"}},
			{"State Management", "2 hours", []string{"Redux in React Native", "AsyncStorage", "Context API"}},
		},
	},
	{
		cid:         "fullstack-web-dev",
		name:        "Full-Stack Web Development",
		description: "Complete full-stack development course covering frontend, backend, and database technologies. Build production-ready web applications.",
		category:    "Web Development",
		level:       models.LevelAdvanced,
		price:       79.99,
		chapters: []starterChapter{
			{"Frontend Technologies", "4 hours", []string{"React, Vue, Angular", "State management", "Testing"}},
			{"Backend Development", "5 hours", []string{"Node.js and Express", "RESTful APIs", "Authentication"}},
			{"Database Design", "3 hours", []string{"SQL and NoSQL", "Database relationships", "Query optimization"}},
			{"Deployment and DevOps", "3 hours", []string{"Docker and containers", "Cloud deployment", "CI/CD"}},
		},
	},
	{
		cid:         "python-programming",
		name:        "Python Programming Masterclass",
		description: "Learn Python from basics to advanced concepts. Perfect for beginners and those looking to advance their Python skills for web development, data science, and automation.",
		category:    "Programming",
		level:       models.LevelBeginner,
		price:       34.99,
		chapters: []starterChapter{
			{"Python Basics", "2 hours", []string{"Variables and data types", "Control structures", "Functions"}},
			{"Object-Oriented Programming", "3 hours", []string{"Classes and objects", "Inheritance", "Polymorphism"}},
			{"Web Development with Django", "4 hours", []string{"Django framework", "Models and views", "Templates"}},
			{"Data Science with Python", "3 hours", []string{"Pandas and NumPy", "Data visualization", "Machine learning basics"}},
		},
	},
}

// toCourse builds the stored course for a starter entry owned by ownerEmail.
// Chapter ids are 1-based positions and the chapter count matches the chapter list.
func (s starterCourse) toCourse(ownerEmail string) *models.Course {
	chapters := make([]models.Chapter, 0, len(s.chapters))
	for idx, ch := range s.chapters {
		chapters = append(chapters, models.Chapter{
			ID:          models.ChapterID(strconv.Itoa(idx + 1)),
			Name:        ch.name,
			Description: strings.Join(ch.topics, ", "),
			Duration:    ch.duration,
			Topics:      ch.topics,
		})
	}

	return &models.Course{
		CID:          s.cid,
		Name:         s.name,
		Description:  s.description,
		Category:     s.category,
		Level:        s.level,
		NoOfChapters: len(chapters),
		IncludeVideo: true,
		CourseJSON: models.CourseContent{
			Chapters:    chapters,
			Price:       s.price,
			IsFree:      s.price == 0,
			VideoSource: models.VideoSourceYoutube,
		},
		UserEmail:   ownerEmail,
		IsPublished: true,
	}
}
