package chat

import (
	"fmt"
	"strings"
)

// Canned response templates for each intent. The texts mirror the assistant's
// coaching voice; roadmap responses embed the machine-readable payload block
// between the natural-language summary and the follow-up instructions.

func roadmapCreatedMessage(p Params, payload string) string {
	return fmt.Sprintf(`🎯 **Roadmap Created!**

**%s - %s (%s)**
%s daily commitment

%s

✅ **Next Steps:**
• Visit **Roadmaps tab** to view your plan
• Daily tasks will be auto-generated from each step
• Track progress and mark milestones complete

💡 **Custom Roadmaps:** Have your own plan? Just paste it and I'll convert it into trackable daily tasks!

🚀 Ready to begin? Your learning journey starts now!`,
		p.Goal, p.Timeline, p.Level, p.DailyTime, payload)
}

// clarificationMessage asks for the missing roadmap parameters without
// creating any roadmap record.
func clarificationMessage(goal string) string {
	return fmt.Sprintf(`🗺️ **ROADMAP GENERATOR ACTIVATED!**

I'll create a personalized roadmap for you! Here's what I need:

📋 **Your Goal:** %s
⏰ **Timeline:** How long do you want this to take? (weeks/months)
📊 **Current Level:** Beginner, Intermediate, or Advanced?
🎯 **Daily Time:** How much time can you dedicate daily?

**Example Request:**
"Create a roadmap to learn JavaScript in 3 months, 2 hours daily, I'm a beginner"

Once you give me these details, I'll generate:
✅ **Daily action steps**
✅ **Weekly milestones**
✅ **Progress checkpoints**
✅ **Resource recommendations**
✅ **Motivation reminders**

**Ready to build your success path?** 🚀`, goal)
}

func planImportedMessage(title string, stepCount int, duration, payload string) string {
	return fmt.Sprintf(`📥 **Custom Roadmap Imported!**

**"%s"**
%d steps • %s

%s

✅ **Your plan is now trackable:**
• Each step converted to daily tasks
• Progress tracking enabled
• Milestone celebrations added

🎯 Check your **Roadmaps tab** to start following your custom plan!`,
		title, stepCount, duration, payload)
}

const importHelpMessage = `📥 **Custom Roadmap Assistant**

I can help you convert any learning plan into a trackable roadmap!

**Just paste your plan like this:**
` + "```" + `
Week 1: Learn HTML basics
Week 2: CSS styling
Week 3: JavaScript fundamentals
Week 4: Build first project
` + "```" + `

**Or this format:**
` + "```" + `
1. Setup development environment
2. Study core concepts (2 weeks)
3. Practice with exercises
4. Build portfolio project
` + "```" + `

I'll automatically:
• Break it into daily tasks
• Add progress tracking
• Set up milestone rewards
• Create completion celebrations

**Ready to paste your custom roadmap?** 📋`

const motivationMessage = `🌟 **YOU'RE ABSOLUTELY AMAZING!**

I can see the dedication in your approach - just by asking for help, you're already ahead of most people! 💪

**Remember these truths:**
🎯 Every expert was once a beginner
🚀 Progress beats perfection every time
✨ Small consistent actions create extraordinary results
🏆 You're building something incredible, step by step

**You've got this!** The fact that you're here, planning and learning, shows you're already on the path to success. Keep going - your future self will thank you!

What's one small step you can take right now? Let's celebrate that momentum! 🎉`

const productivityMessage = `📋 **PRODUCTIVITY MODE ACTIVATED!**

Looking to crush your tasks? I'm here to help you become unstoppable! 💪

**Quick Wins:**
🎯 Break big tasks into 15-minute chunks
⏰ Try the Pomodoro technique (25min focus + 5min break)
📱 Use the Tasks tab to track everything
📊 Check Analytics to see your patterns

**Pro Tips:**
✅ Start with the hardest task when energy is high
🏆 Celebrate small wins - they add up!
🚫 Eliminate distractions for deep work
📈 Track your progress daily

Ready to get productive? Let's start with your most important task right now! 🚀`

const learningMessage = `🧠 **LEARNING ACCELERATOR ENGAGED!**

Ready to level up your skills? You're in the perfect place! ✨

**Smart Learning Strategy:**
📚 Set specific, measurable learning goals
🎯 Practice consistently > cramming occasionally
🔄 Apply what you learn immediately
📝 Teach others to solidify understanding

**Need a structured approach?**
Ask me to "create a roadmap to learn [skill] in [time], [level], [daily time]"

**Example:** "Create a roadmap to learn Python in 3 months, 2 hours daily, I'm a beginner"

What skill are you excited to master? Let's build your learning path! 🚀`

const goalPlanningMessage = `🎯 **GOAL CRUSHER MODE ACTIVATED!**

I love your ambition! Let's turn those dreams into actionable plans! 💪

**SMART Goal Framework:**
📊 **Specific** - What exactly do you want?
📏 **Measurable** - How will you track progress?
🎯 **Achievable** - Is it realistic with your resources?
📈 **Relevant** - Does it align with your bigger vision?
⏰ **Time-bound** - When will you complete it?

**My Tools for Success:**
🗺️ Create detailed roadmaps
📋 Break goals into daily tasks
📊 Track progress with analytics
🏆 Celebrate milestones

What's your big goal? Share it and I'll help you create a winning strategy! 🚀`

const wellnessMessage = `🌿 **TIME TO RECHARGE!**

Rest isn't the opposite of progress - it's part of it! 💚

**Gentle reminders:**
🧘 A short break resets your focus better than pushing through
😴 Sleep is when your brain consolidates what you learned
🚶 A 10-minute walk beats another hour of tired scrolling
💧 Hydrate and stretch - your body keeps the score

**Try this now:** Close your eyes, take three slow breaths, and drop your shoulders.

Burnout steals more time than breaks ever will. Take care of yourself - your goals will still be here when you return! 🌱`

const careerMessage = `💼 **CAREER GROWTH MODE!**

Investing in your career is the highest-leverage move you can make! 🚀

**Moves that compound:**
📚 Learn one marketable skill deeply, not five shallowly
🗣️ Practice talking about your work - interviews reward clarity
📝 Keep a brag document of wins as they happen
🤝 Help colleagues visibly - reputation is a career engine

**Want a concrete plan?**
Ask me to "create a roadmap to become [role] in [time], [level], [daily time]" and I'll break it into weekly steps.

What's the next role you're aiming for? Let's map the path! 🎯`

func greetingMessage(botName string) string {
	return fmt.Sprintf(`Hey there! 👋 I'm %s, your productivity companion!

Great to see you! I can help you create learning roadmaps, organize tasks, and stay motivated.

What would you like to work on today? 🚀`, botName)
}

const questionMessage = `🤔 **Great question!**

Here's how I can help you find the answer:

🗺️ **Roadmaps** - ask "create a roadmap to learn [skill] in [time], [level], [daily time]"
📋 **Tasks** - add what's on your mind to the Tasks tab and I'll help you prioritize
📊 **Analytics** - check your patterns to see what's working
🎯 **Goals** - tell me your goal and I'll help you break it down

Give me a bit more detail and let's figure it out together! 💪`

func capabilitiesMessage(botName string) string {
	return fmt.Sprintf(`Hey there! 👋 I'm %s, your AI productivity companion, and I'm excited to help you succeed! ✨

**I can help you with:**
🗺️ **Roadmaps** - Create personalized learning paths
📋 **Tasks** - Organize and track your work
📊 **Analytics** - Understand your productivity patterns
🎯 **Goals** - Plan and achieve your dreams
💪 **Motivation** - Keep you inspired and focused

**Quick Start Ideas:**
• "Create a roadmap to learn [skill]"
• "Help me plan my day"
• "I need some motivation"
• "How can I be more productive?"

What would you like to tackle first? I'm here to make it happen! 🚀`, botName)
}

const detailedAckMessage = `Thanks for sharing all that detail! 🙏

I can tell there's a lot on your mind. Here's how we can turn it into action:

1️⃣ Pick the single most important thread from what you wrote
2️⃣ Tell me the outcome you want and your timeline
3️⃣ I'll turn it into a structured roadmap with daily tasks

If it's a learning goal, try: "create a roadmap to learn [skill] in [time], [level], [daily time]"

Which part should we tackle first? 🚀`

// genericMessage branches on utterance length: long messages get a detailed
// acknowledgment, short ones the capabilities menu.
func genericMessage(text, botName string) string {
	if len(strings.Fields(text)) > 20 {
		return detailedAckMessage
	}
	return capabilitiesMessage(botName)
}
