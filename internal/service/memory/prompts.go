// Package memory scores, ranks, and condenses past interactions into
// background context for a new prompt.
package memory

// Fixed instruction texts sent alongside user content. These are part of the
// tool's observable behavior; rewording them changes what the models do.

const importancePrompt = `
I need you to rate a question on an integer scale of 1 to 10 where 1 is least important and 10 is most important.
By important I mean that the question is asking something specific about a topic that requires expert specialist knowledge to answer accurately.
In the future, this will be used to rank the questions. Here are some examples:
- Example Question 1: What colour is grass? Example Importance 1: 1
- Example Question 2: How could I modify a model-free algorithm such as A2C so that it incorporates imagination rollout planning in the manner of I2A? Example Importance: 9
Given the above, how important is the following?

`

const summaryPrompt = "Please summarise the following text into a short passage suitable for prompting a large language model: "

// ClarifySuffix is appended to every main interaction so the model asks for
// missing detail instead of guessing.
const ClarifySuffix = `
Please help me with this, if clarifications would help your reply, give me questions in the form
{'q1': 'the question', 'q2':'the question'}
and I will help you with that.
`

// ClassifyPrompt precedes the model's last reply when deciding whether that
// reply is a question back to the operator or a final answer.
const ClassifyPrompt = `
I need you to classify a passage of text. Reply with the single integer 1 if the passage is asking clarifying questions that need answers before a proper reply can be given, or the single integer 2 if the passage is a final answer.
Here is the passage:

`

// BackgroundPreamble tells the model how to treat the background block. It
// sits above the header when a background is prepended to a prompt.
const BackgroundPreamble = "The following information is background from previous conversations. It is not part of the prompt itself, but take it into account when providing your answer.\n"

// BackgroundHeader opens the synthesized background block.
const BackgroundHeader = "Background:\n"
