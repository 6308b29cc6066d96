package usecase

import "nextcare-api/internal/domain/entity"

func sampleHealthResources() []entity.HealthResource {
	return []entity.HealthResource{
		{
			Title:       "Understanding Your Recovery Journey",
			Description: "A comprehensive guide to navigating post-hospital care and recovery milestones.",
			Category:    entity.ResourceCategoryGuide,
			Content:     "This guide provides essential information about what to expect during your recovery period, including common challenges and strategies to overcome them.",
			Featured:    true,
			Tags:        []string{"recovery", "post-hospital", "wellness"},
			Author:      "NextCare Medical Team",
			Duration:    "10 min read",
		},
		{
			Title:       "Medication Management 101",
			Description: "Learn how to properly manage your medications and avoid common mistakes.",
			Category:    entity.ResourceCategoryArticle,
			Content:     "Proper medication management is crucial for recovery. This resource covers scheduling, storage, side effects, and when to contact your healthcare provider.",
			Featured:    true,
			Tags:        []string{"medication", "safety", "healthcare"},
			Author:      "Dr. Sarah Johnson",
			Duration:    "8 min read",
		},
		{
			Title:       "Nutrition for Healing",
			Description: "Essential nutrition tips to support your body's healing process.",
			Category:    entity.ResourceCategoryVideo,
			Content:     "Discover foods that promote healing, meal planning strategies, and nutritional supplements that may benefit your recovery.",
			Featured:    true,
			Tags:        []string{"nutrition", "diet", "healing"},
			Author:      "Nutritionist Lisa Chen",
			Duration:    "15 min",
		},
		{
			Title:       "Exercise During Recovery",
			Description: "Safe exercises and physical activities to aid in your recovery.",
			Category:    entity.ResourceCategoryExercise,
			Content:     "Learn appropriate physical activities for different stages of recovery, from gentle movements to progressive strengthening exercises.",
			Featured:    true,
			Tags:        []string{"exercise", "physical therapy", "movement"},
			Author:      "Physical Therapist Mike Roberts",
			Duration:    "20 min",
		},
		{
			Title:       "Managing Pain and Discomfort",
			Description: "Effective strategies for managing pain during your recovery period.",
			Category:    entity.ResourceCategoryArticle,
			Content:     "Explore both medical and non-medical approaches to pain management, including when to seek help.",
			Tags:        []string{"pain", "comfort", "wellness"},
			Author:      "Dr. Emily Davis",
			Duration:    "12 min read",
		},
		{
			Title:       "Mental Health and Recovery",
			Description: "Understanding the emotional aspects of recovery and healing.",
			Category:    entity.ResourceCategoryArticle,
			Content:     "Recovery isn't just physical. Learn about common emotional responses, coping strategies, and when to seek mental health support.",
			Featured:    true,
			Tags:        []string{"mental health", "emotional wellness", "support"},
			Author:      "Therapist James Wilson",
			Duration:    "10 min read",
		},
		{
			Title:       "Sleep Hygiene for Better Recovery",
			Description: "Improve your sleep quality to enhance healing and recovery.",
			Category:    entity.ResourceCategoryArticle,
			Content:     "Quality sleep is essential for healing. Discover tips for better sleep hygiene and creating an optimal sleep environment.",
			Tags:        []string{"sleep", "wellness", "recovery"},
			Author:      "Sleep Specialist Dr. Anna Martinez",
			Duration:    "7 min read",
		},
		{
			Title:       "When to Contact Your Healthcare Provider",
			Description: "Warning signs and symptoms that require immediate medical attention.",
			Category:    entity.ResourceCategoryGuide,
			Content:     "Learn to recognize concerning symptoms, understand when to call your doctor, and when to seek emergency care.",
			Featured:    true,
			Tags:        []string{"safety", "emergency", "healthcare"},
			Author:      "NextCare Medical Team",
			Duration:    "5 min read",
		},
	}
}

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			Name:      "Dr. Sarah Johnson",
			Specialty: "Cardiology",
			Facility:  "NextCare Heart Center",
			ImageURL:  "https://plus.unsplash.com/premium_photo-1661580574627-9211124e5c3f?q=80&w=774&auto=format&fit=crop",
			Bio:       "Specializes in preventive cardiology and heart health management.",
			Active:    true,
		},
		{
			Name:      "Dr. Emily Davis",
			Specialty: "Internal Medicine",
			Facility:  "NextCare Clinic",
			ImageURL:  "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=900&auto=format&fit=crop&q=60",
			Bio:       "Focuses on comprehensive adult care and chronic condition management.",
			Active:    true,
		},
		{
			Name:      "Dr. Michael Roberts",
			Specialty: "Physical Therapy",
			Facility:  "NextCare Rehab",
			ImageURL:  "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=900&auto=format&fit=crop&q=60",
			Bio:       "Rehabilitation specialist focused on recovery and mobility.",
			Active:    true,
		},
		{
			Name:      "Dr. Anna Martinez",
			Specialty: "Sleep Medicine",
			Facility:  "NextCare Wellness",
			ImageURL:  "https://plus.unsplash.com/premium_photo-1658506671316-0b293df7c72b?w=900&auto=format&fit=crop&q=60",
			Bio:       "Helps patients improve sleep quality and recovery.",
			Active:    true,
		},
		{
			Name:      "Dr. Priya Shah",
			Specialty: "Family Medicine",
			Facility:  "NextCare Family Health",
			ImageURL:  "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=900&auto=format&fit=crop&q=60",
			Bio:       "Primary care physician providing personalized care for all ages.",
			Active:    true,
		},
	}
}
