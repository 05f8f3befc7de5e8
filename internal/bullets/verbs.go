package bullets

// strongVerbs are the high-impact action verbs a bullet is expected to lead with.
var strongVerbs = map[string]bool{
	"achieved": true, "accelerated": true, "accomplished": true, "added": true, "advanced": true, "analyzed": true,
	"architected": true, "attained": true, "augmented": true, "awarded": true, "bootstrapped": true,
	"built": true, "calculated": true, "capitalized": true, "championed": true, "collaborated": true, "composed": true,
	"computed": true, "conceived": true, "consolidated": true, "constructed": true, "converted": true, "coordinated": true,
	"created": true, "debugged": true, "decreased": true, "defined": true, "delivered": true, "deployed": true,
	"designed": true, "developed": true, "devised": true, "diagnosed": true, "directed": true, "distributed": true,
	"documented": true, "doubled": true, "drove": true, "earned": true, "eliminated": true, "empowered": true,
	"engineered": true, "enhanced": true, "established": true, "estimated": true, "evaluated": true, "exceeded": true,
	"expanded": true, "expedited": true, "facilitated": true, "forecasted": true, "formulated": true, "founded": true,
	"generated": true, "guided": true, "hired": true, "identified": true, "implemented": true, "improved": true,
	"increased": true, "initiated": true, "innovated": true, "installed": true, "integrated": true, "introduced": true,
	"invented": true, "investigated": true, "launched": true, "led": true, "leveraged": true, "managed": true,
	"maximized": true, "mentored": true, "migrated": true, "minimized": true, "modeled": true, "modified": true,
	"negotiated": true, "optimized": true, "orchestrated": true, "organized": true, "originated": true, "outperformed": true,
	"overcame": true, "overhauled": true, "pioneered": true, "planned": true, "predicted": true, "produced": true,
	"programmed": true, "promoted": true, "proposed": true, "provided": true, "published": true, "qualified": true,
	"quantified": true, "reached": true, "rebuilt": true, "reduced": true, "refactored": true, "refined": true,
	"reorganized": true, "resolved": true, "restructured": true, "revamped": true, "reviewed": true, "revitalized": true,
	"saved": true, "scaled": true, "secured": true, "selected": true, "separated": true, "simplified": true,
	"sold": true, "solved": true, "spearheaded": true, "standardized": true, "started": true, "streamlined": true,
	"strengthened": true, "structured": true, "succeeded": true, "supervised": true, "supported": true,
	"surpassed": true, "synthesized": true, "targeted": true, "taught": true, "tested": true, "trained": true,
	"transformed": true, "translated": true, "tripled": true, "updated": true, "upgraded": true, "utilized": true,
	"validated": true, "verified": true, "visualized": true, "won": true, "wrote": true,
}

// headerWords are section titles that are never bullets.
var headerWords = map[string]bool{
	"education": true, "experience": true, "skills": true, "projects": true, "certifications": true,
	"summary": true, "objective": true, "contact": true, "references": true, "achievements": true,
	"awards": true, "publications": true, "languages": true, "interests": true, "hobbies": true,
	"professional experience": true, "work experience": true, "technical skills": true,
	"core competencies": true, "personal information": true, "personal details": true,
}

// IsStrongVerb reports whether word (any case) is in the action verb vocabulary.
func IsStrongVerb(word string) bool {
	return strongVerbs[lower(word)]
}
