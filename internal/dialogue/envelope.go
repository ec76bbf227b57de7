package dialogue

import (
	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/spelling"
)

// ResponseType tags an Envelope. Each type carries a fixed payload shape.
type ResponseType string

const (
	TypeGreeting      ResponseType = "greeting"
	TypeFoodInfo      ResponseType = "food_info"
	TypeMythInfo      ResponseType = "myth_info"
	TypeGeneralAdvice ResponseType = "general_advice"
	TypeEmotion       ResponseType = "emotion"
	TypeOffTopic      ResponseType = "off_topic"
	TypeProfileUpdate ResponseType = "profile_update"
	TypeConfused      ResponseType = "confused"
)

// Envelope is the structured reply for one turn.
// FoodKey and FoodData are set only on food_info; MythData only on a matched
// myth_info.
type Envelope struct {
	Type              ResponseType          `json:"type"`
	Response          string                `json:"response"`
	UIEffects         catalog.UIEffects     `json:"ui_effects"`
	SupportiveMessage string                `json:"supportive_message,omitempty"`
	FoodKey           string                `json:"food_key,omitempty"`
	FoodData          *catalog.FoodEntry    `json:"food_data,omitempty"`
	MythData          *catalog.MythEntry    `json:"myth_data,omitempty"`
	Corrections       []spelling.Correction `json:"corrections,omitempty"`
	Context           *UserContext          `json:"context,omitempty"`
}

func ui(mood, color string) catalog.UIEffects {
	return catalog.UIEffects{AvatarMood: mood, HologramColor: color}
}

func uiMeter(mood, color string, meter float64) catalog.UIEffects {
	return catalog.UIEffects{AvatarMood: mood, HologramColor: color, MeterValue: &meter}
}

func foodEnvelope(food catalog.FoodEntry, text, supportive string) Envelope {
	f := food.Clone()
	return Envelope{
		Type:              TypeFoodInfo,
		Response:          text,
		UIEffects:         food.UIEffects.Clone(),
		SupportiveMessage: supportive,
		FoodKey:           food.Key,
		FoodData:          &f,
	}
}

func mythEnvelope(myth catalog.MythEntry, text string, effects catalog.UIEffects, supportive string) Envelope {
	m := myth.Clone()
	return Envelope{
		Type:              TypeMythInfo,
		Response:          text,
		UIEffects:         effects.Clone(),
		SupportiveMessage: supportive,
		MythData:          &m,
	}
}

func textEnvelope(t ResponseType, text string, effects catalog.UIEffects, supportive string) Envelope {
	return Envelope{Type: t, Response: text, UIEffects: effects, SupportiveMessage: supportive}
}
