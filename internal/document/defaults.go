package document

import "github.com/google/uuid"

// DefaultResume returns the seed content a resume session opens with.
func DefaultResume() Resume {
	return Resume{
		FullName: "ALEXANDER SMITH",
		Location: "New York, USA",
		Email:    "alex.smith@example.com",
		Phone:    "+1 (555) 123-4567",
		LinkedIn: "linkedin.com/in/alexsmith",
		Website:  "www.alexsmith.design",
		Summary: "Creative and detail-oriented professional with over 5 years of experience " +
			"in digital design and project management. Proven track record of delivering " +
			"high-quality solutions that drive business growth.",
		Skills: []string{
			"Project Management",
			"UI/UX Design",
			"React & TypeScript",
			"Digital Marketing",
			"Agile Methodology",
		},
		Experience: []Experience{
			{
				ID:       uuid.NewString(),
				Role:     "Senior Product Designer",
				Company:  "TechFlow Solutions",
				Duration: "Jan 2021 – Present",
				Description: "• Led the redesign of the core product interface, improving user retention by 25%.\n" +
					"• Managed a team of 4 designers and collaborated closely with engineering teams.\n" +
					"• Conducted user research and usability testing to inform design decisions.",
			},
			{
				ID:       uuid.NewString(),
				Role:     "UX Designer",
				Company:  "Creative Pulse Agency",
				Duration: "Jun 2018 – Dec 2020",
				Description: "• Designed responsive websites for diverse clients in fintech and healthcare.\n" +
					"• Created wireframes, prototypes, and high-fidelity mockups.\n" +
					"• Increased client satisfaction scores by 15% through improved design processes.",
			},
		},
		Education: []Education{
			{
				ID:     uuid.NewString(),
				Degree: "Bachelor of Fine Arts in Interaction Design",
				School: "California College of the Arts",
				Year:   "2014 – 2018",
			},
		},
	}
}

// DefaultBusinessCard returns the seed content a card session opens with.
func DefaultBusinessCard() BusinessCard {
	return BusinessCard{
		FullName: "JANE DOE",
		Role:     "Chief Executive Officer",
		Company:  "NEXUS INNOVATIONS",
		Email:    "jane@nexus.com",
		Phone:    "+1 (555) 987-6543",
		Website:  "nexus.com",
		Location: "San Francisco, CA",
	}
}
