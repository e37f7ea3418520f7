package services

import (
	"strings"

	"github.com/skillpath/learning-service/internal/models"
)

// Hand-authored fallback roadmaps, returned when no completion provider is
// configured or the provider call fails. Selection is a substring match on
// the target goal; "Full-Stack Developer" is the default.

func templateForGoal(targetGoal string) models.RoadmapContent {
	if strings.Contains(strings.ToLower(targetGoal), "data scientist") {
		return dataScientistTemplate()
	}
	return fullStackTemplate()
}

func fullStackTemplate() models.RoadmapContent {
	return models.RoadmapContent{
		TotalEstimatedWeeks: 24,
		SkillsToMaster: []string{
			"HTML & CSS", "JavaScript", "React", "Node.js",
			"REST APIs", "SQL", "Git", "Deployment",
		},
		Phases: []models.RoadmapPhase{
			{
				PhaseNumber:    1,
				Title:          "Web Foundations",
				Description:    "Core languages and tooling of the web.",
				EstimatedWeeks: 8,
				Modules: []models.RoadmapModule{
					{
						ModuleID:       "fs-html-css",
						Title:          "HTML & CSS Fundamentals",
						Description:    "Structure and style web pages from scratch.",
						Topics:         []string{"Semantic HTML", "Flexbox", "Grid", "Responsive design"},
						EstimatedHours: 40,
						Difficulty:     "beginner",
						Resources: []models.ModuleResource{
							{Type: "documentation", Title: "MDN Web Docs", URL: "https://developer.mozilla.org"},
						},
					},
					{
						ModuleID:       "fs-javascript",
						Title:          "JavaScript Essentials",
						Description:    "The language of the browser, from syntax to async.",
						Topics:         []string{"Variables and types", "Functions", "DOM manipulation", "Promises and async/await"},
						EstimatedHours: 60,
						Difficulty:     "beginner",
						Resources: []models.ModuleResource{
							{Type: "book", Title: "Eloquent JavaScript", URL: "https://eloquentjavascript.net"},
						},
					},
				},
			},
			{
				PhaseNumber:    2,
				Title:          "Frontend Frameworks",
				Description:    "Build interactive applications with React.",
				EstimatedWeeks: 8,
				Modules: []models.RoadmapModule{
					{
						ModuleID:       "fs-react",
						Title:          "React",
						Description:    "Components, state, and the modern frontend workflow.",
						Topics:         []string{"Components and props", "Hooks", "State management", "Routing"},
						EstimatedHours: 70,
						Difficulty:     "intermediate",
						Resources: []models.ModuleResource{
							{Type: "documentation", Title: "React Docs", URL: "https://react.dev"},
						},
					},
				},
			},
			{
				PhaseNumber:    3,
				Title:          "Backend & Deployment",
				Description:    "Servers, databases, and shipping to production.",
				EstimatedWeeks: 8,
				Modules: []models.RoadmapModule{
					{
						ModuleID:       "fs-node",
						Title:          "Node.js & REST APIs",
						Description:    "Design and build HTTP APIs backed by a database.",
						Topics:         []string{"Express", "REST design", "Authentication", "SQL basics"},
						EstimatedHours: 70,
						Difficulty:     "intermediate",
						Resources: []models.ModuleResource{
							{Type: "documentation", Title: "Node.js Docs", URL: "https://nodejs.org/docs"},
						},
					},
					{
						ModuleID:       "fs-deploy",
						Title:          "Deployment & DevOps Basics",
						Description:    "Get an application running reliably in production.",
						Topics:         []string{"Git workflows", "CI pipelines", "Containers", "Cloud hosting"},
						EstimatedHours: 40,
						Difficulty:     "intermediate",
						Resources:      []models.ModuleResource{},
					},
				},
			},
		},
	}
}

func dataScientistTemplate() models.RoadmapContent {
	return models.RoadmapContent{
		TotalEstimatedWeeks: 28,
		SkillsToMaster: []string{
			"Python", "Statistics", "Pandas", "Data Visualization",
			"Machine Learning", "SQL", "Model Evaluation",
		},
		Phases: []models.RoadmapPhase{
			{
				PhaseNumber:    1,
				Title:          "Python & Statistics Foundations",
				Description:    "The language and math every data scientist leans on.",
				EstimatedWeeks: 10,
				Modules: []models.RoadmapModule{
					{
						ModuleID:       "ds-python",
						Title:          "Python for Data Work",
						Description:    "Core Python with a focus on data manipulation.",
						Topics:         []string{"Syntax and data structures", "NumPy", "Pandas", "Jupyter workflows"},
						EstimatedHours: 60,
						Difficulty:     "beginner",
						Resources: []models.ModuleResource{
							{Type: "documentation", Title: "Pandas Docs", URL: "https://pandas.pydata.org/docs"},
						},
					},
					{
						ModuleID:       "ds-statistics",
						Title:          "Statistics & Probability",
						Description:    "Reason about uncertainty and draw sound conclusions.",
						Topics:         []string{"Descriptive statistics", "Distributions", "Hypothesis testing", "Correlation"},
						EstimatedHours: 50,
						Difficulty:     "intermediate",
						Resources:      []models.ModuleResource{},
					},
				},
			},
			{
				PhaseNumber:    2,
				Title:          "Data Analysis & Visualization",
				Description:    "Turn raw data into insight.",
				EstimatedWeeks: 8,
				Modules: []models.RoadmapModule{
					{
						ModuleID:       "ds-analysis",
						Title:          "Exploratory Data Analysis",
						Description:    "Clean, explore, and visualize real datasets.",
						Topics:         []string{"Data cleaning", "Feature engineering", "Matplotlib", "SQL for analysis"},
						EstimatedHours: 60,
						Difficulty:     "intermediate",
						Resources:      []models.ModuleResource{},
					},
				},
			},
			{
				PhaseNumber:    3,
				Title:          "Machine Learning",
				Description:    "Build, evaluate, and ship predictive models.",
				EstimatedWeeks: 10,
				Modules: []models.RoadmapModule{
					{
						ModuleID:       "ds-ml",
						Title:          "Machine Learning Fundamentals",
						Description:    "Supervised and unsupervised learning with scikit-learn.",
						Topics:         []string{"Regression", "Classification", "Clustering", "Model evaluation"},
						EstimatedHours: 80,
						Difficulty:     "advanced",
						Resources: []models.ModuleResource{
							{Type: "documentation", Title: "scikit-learn User Guide", URL: "https://scikit-learn.org/stable/user_guide.html"},
						},
					},
				},
			},
		},
	}
}
